package main

import (
	"fmt"

	"github.com/cliently/cliently/internal/calc"
	"github.com/cliently/cliently/internal/cli"
	"github.com/cliently/cliently/internal/common"
	"github.com/cliently/cliently/internal/model"
	"github.com/spf13/cobra"
)

func billCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Calculate the total cost of a consultation",
		Long: `Calculate a consultation bill: rate times hours billed, plus the flat
retainer fee, rounded to cents.`,
		RunE: runBill,
	}

	cmd.Flags().Float64P("rate", "r", 0, "Consultation rate in dollars per hour")
	cmd.Flags().Float64P("hours", "t", 0, "Hours to be billed")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func runBill(cmd *cobra.Command, _ []string) error {
	rate, _ := cmd.Flags().GetFloat64("rate")
	hours, _ := cmd.Flags().GetFloat64("hours")

	total, err := calc.Bill(rate, hours)
	if err != nil {
		return common.NewUserError("could not calculate bill", err)
	}

	fmt.Println(cli.FormatSuccess("Legal counsel cost due: " + model.Money(total)))
	return nil
}
