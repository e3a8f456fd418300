package main

import (
	"fmt"
	"os"

	"github.com/cliently/cliently/internal/cli"
	"github.com/cliently/cliently/internal/engine"
	"github.com/cliently/cliently/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func intakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intake",
		Short: "Interactively collect client cases and print reports",
		Long: `Run a full intake session: criminal cases, then civil cases, then
filings. Each case is collected field by field with validation, and a
client report is printed as soon as the case is complete.`,
		RunE: runIntake,
	}

	cmd.Flags().String("as-of", "", "Reference date for day counts (YYYY-MM-DD, default: today)")
	_ = viper.BindPFlag("intake.reference_date", cmd.Flags().Lookup("as-of"))

	return cmd
}

func runIntake(cmd *cobra.Command, _ []string) error {
	clock, err := resolveClock("")
	if err != nil {
		return err
	}

	handler := cli.NewInterruptHandler(os.Stdout)
	ctx := handler.HandleInterrupts(cmd.Context())

	fmt.Println(cli.FormatTitle("Welcome to Cliently! Enter your clients' information to generate reports."))

	prompter := cli.NewIntakePrompter(os.Stdin, os.Stdout)
	reports := report.NewWriter(os.Stdout)
	produced, err := engine.New(prompter, reports, clock).Run(ctx)
	if err != nil {
		if handler.WasInterrupted() {
			return nil
		}
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Generated %d client report(s)", produced)))
	return nil
}
