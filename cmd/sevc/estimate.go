package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quillhaven/severance-compass/internal/cli"
	"github.com/quillhaven/severance-compass/internal/engine"
)

func estimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate severance entitlement",
		Long: `Compute the statutory minimum notice, statutory severance where it
applies, the common-law notice range, and a recommended amount for one
employee profile.`,
		RunE: runEstimate,
	}

	addProfileFlags(cmd, "estimate")
	cmd.Flags().String("format", "table", "Output format (table, json)")
	_ = viper.BindPFlag("estimate.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	profile := profileFromFlags("estimate")
	warnUnknownJurisdiction(profile.Jurisdiction)

	estimate, err := engine.Estimate(profile)
	if err != nil {
		return fmt.Errorf("estimation rejected: %w", err)
	}

	switch viper.GetString("estimate.format") {
	case "json":
		out, marshalErr := json.MarshalIndent(estimate, "", "  ")
		if marshalErr != nil {
			return fmt.Errorf("failed to encode estimate: %w", marshalErr)
		}
		cmd.Println(string(out))
	default:
		cmd.Println(cli.RenderEstimate(estimate))
		if profile.UnionMember {
			cmd.Println(cli.FormatWarning("Union members are covered by their collective agreement; no common-law estimate applies."))
		}
	}

	return nil
}
