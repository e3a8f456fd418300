package main

import (
	"fmt"

	"github.com/cliently/cliently/internal/calc"
	"github.com/cliently/cliently/internal/cli"
	"github.com/cliently/cliently/internal/common"
	"github.com/spf13/cobra"
)

func suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a case outcome from three 1-10 ratings",
		Long: `Suggest whether to drop a case, let the client decide, or pursue it,
based on ratings for case strength, opposing-party flexibility, and client
communication.`,
		RunE: runSuggest,
	}

	cmd.Flags().IntP("strength", "s", 0, "Strength of the case's defense (1-10)")
	cmd.Flags().IntP("flexibility", "f", 0, "Flexibility of the opposing party (1-10)")
	cmd.Flags().IntP("communication", "c", 0, "Quality of client communication (1-10)")
	_ = cmd.MarkFlagRequired("strength")
	_ = cmd.MarkFlagRequired("flexibility")
	_ = cmd.MarkFlagRequired("communication")

	return cmd
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	strength, _ := cmd.Flags().GetInt("strength")
	flexibility, _ := cmd.Flags().GetInt("flexibility")
	communication, _ := cmd.Flags().GetInt("communication")

	decision, err := calc.Suggest(strength, flexibility, communication)
	if err != nil {
		return common.NewUserError("could not make a suggestion", err)
	}

	fmt.Println(cli.FormatSuccess("Suggested decision: " + string(decision)))
	return nil
}
