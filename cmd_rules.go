package main

import (
	"github.com/spf13/cobra"

	"github.com/crillab/countdown/report"
)

func (a *app) rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Explains the rules of the numbers round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.WriteRules(cmd.OutOrStdout())
		},
	}
}
