package main

import (
	"fmt"

	"github.com/cliently/cliently/internal/calc"
	"github.com/cliently/cliently/internal/cli"
	"github.com/cliently/cliently/internal/common"
	"github.com/cliently/cliently/internal/model"
	"github.com/spf13/cobra"
)

func daysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "days <YYYY-MM-DD>",
		Short: "Count the days until a court date or filing deadline",
		Args:  cobra.ExactArgs(1),
		RunE:  runDays,
	}

	cmd.Flags().String("as-of", "", "Reference date to count from (YYYY-MM-DD, default: today)")

	return cmd
}

func runDays(cmd *cobra.Command, args []string) error {
	asOf, _ := cmd.Flags().GetString("as-of")
	clock, err := resolveClock(asOf)
	if err != nil {
		return err
	}

	year, month, day, err := calc.ParseDate(args[0])
	if err != nil {
		return common.NewUserError("could not read the date", err)
	}

	days, err := calc.DaysUntil(year, month, day, clock.Today())
	if err != nil {
		return common.NewUserError("could not count the days", err)
	}

	fmt.Println(cli.FormatSuccess("Days until the date: " + model.DayCount(days).String()))
	return nil
}
