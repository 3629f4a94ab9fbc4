package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillhaven/severance-compass/internal/cli"
	"github.com/quillhaven/severance-compass/internal/engine"
	"github.com/quillhaven/severance-compass/internal/jurisdiction"
	"github.com/quillhaven/severance-compass/internal/tui"
)

func wizardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Interactively collect a profile and run the full analysis",
		RunE:  runWizard,
	}
}

func runWizard(cmd *cobra.Command, _ []string) error {
	profile, err := tui.Run()
	if err != nil {
		return err
	}
	if profile == nil {
		cmd.Println(cli.SubtleStyle.Render("Canceled."))
		return nil
	}

	estimate, err := engine.Estimate(profile)
	if err != nil {
		return fmt.Errorf("estimation rejected: %w", err)
	}

	pricing := jurisdiction.PricingFor(profile.Jurisdiction)
	analysis := engine.AnalyzeLegalCosts(pricing, profile.Jurisdiction, profile.CurrentOffer,
		estimate.Recommended.Amount, estimate.StatutoryMinimum.Amount, engine.Overrides{})

	cmd.Println(cli.RenderEstimate(estimate))
	cmd.Println(cli.RenderCostAnalysis(analysis))
	cmd.Println(cli.RenderGuidance(engine.ComposeGuidance(analysis.PotentialGap, analysis.Options)))

	return nil
}
