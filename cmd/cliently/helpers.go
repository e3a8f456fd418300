package main

import (
	"github.com/cliently/cliently/internal/common"
	"github.com/cliently/cliently/internal/config"
	"github.com/cliently/cliently/internal/engine"
	"github.com/cliently/cliently/internal/service"
	"github.com/spf13/viper"
)

// resolveClock returns the clock used for day counts. An explicit --as-of
// value wins, then the intake.reference_date config key, then the real clock.
func resolveClock(asOf string) (service.Clock, error) {
	if asOf == "" {
		asOf = viper.GetString("intake.reference_date")
	}
	if asOf == "" {
		return engine.SystemClock{}, nil
	}

	date, err := config.ParseReferenceDate(asOf)
	if err != nil {
		return nil, common.NewUserError("invalid reference date", err)
	}

	return engine.FixedClock{Date: date}, nil
}
