package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quillhaven/severance-compass/internal/cli"
	"github.com/quillhaven/severance-compass/internal/engine"
	"github.com/quillhaven/severance-compass/internal/jurisdiction"
	"github.com/quillhaven/severance-compass/internal/model"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full severance and legal-cost analysis",
		Long: `Estimate the entitlement, compute the potential gap against the
employer's offer (or the statutory floor when no offer exists), generate
the tax-adjusted legal-cost options, and recommend one.`,
		RunE: runAnalyze,
	}

	addProfileFlags(cmd, "analyze")
	cmd.Flags().Float64("offer", 0, "Employer's current severance offer (0 = none)")
	cmd.Flags().Float64("hours", 0, "Override the estimated hours for the hourly option")
	cmd.Flags().Float64("flat-fee", 0, "Override the flat fee")
	cmd.Flags().Float64("contingency-percent", 0, "Override the contingency percentage (e.g. 0.30)")
	cmd.Flags().Float64("tax-rate", 0, "Override the effective tax rate on legal fees")
	cmd.Flags().Bool("save", false, "Save the analysis to history")
	cmd.Flags().String("format", "table", "Output format (table, json)")

	for _, name := range []string{"offer", "hours", "flat-fee", "contingency-percent", "tax-rate", "save", "format"} {
		_ = viper.BindPFlag("analyze."+name, cmd.Flags().Lookup(name))
	}

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	profile := profileFromFlags("analyze")
	if offer := viper.GetFloat64("analyze.offer"); offer > 0 {
		profile.CurrentOffer = &offer
	}
	warnUnknownJurisdiction(profile.Jurisdiction)

	estimate, err := engine.Estimate(profile)
	if err != nil {
		return fmt.Errorf("estimation rejected: %w", err)
	}

	overrides := engine.Overrides{
		EstimatedHours:     optionalFlag(viper.GetFloat64("analyze.hours")),
		FlatFee:            optionalFlag(viper.GetFloat64("analyze.flat-fee")),
		ContingencyPercent: optionalFlag(viper.GetFloat64("analyze.contingency-percent")),
		TaxRate:            optionalFlag(viper.GetFloat64("analyze.tax-rate")),
	}

	pricing := jurisdiction.PricingFor(profile.Jurisdiction)
	analysis := engine.AnalyzeLegalCosts(pricing, profile.Jurisdiction, profile.CurrentOffer,
		estimate.Recommended.Amount, estimate.StatutoryMinimum.Amount, overrides)
	guidance := engine.ComposeGuidance(analysis.PotentialGap, analysis.Options)

	if viper.GetBool("analyze.save") {
		if err := saveAnalysis(cmd, profile, estimate, analysis); err != nil {
			return err
		}
	}

	switch viper.GetString("analyze.format") {
	case "json":
		result := struct {
			Estimate *model.EntitlementEstimate `json:"estimate"`
			Analysis *model.CostAnalysis        `json:"analysis"`
			Guidance []model.GuidanceEntry      `json:"guidance"`
		}{estimate, analysis, guidance}

		out, marshalErr := json.MarshalIndent(result, "", "  ")
		if marshalErr != nil {
			return fmt.Errorf("failed to encode analysis: %w", marshalErr)
		}
		cmd.Println(string(out))
	default:
		cmd.Println(cli.RenderEstimate(estimate))
		cmd.Println(cli.RenderCostAnalysis(analysis))
		cmd.Println(cli.RenderGuidance(guidance))
	}

	return nil
}

func saveAnalysis(cmd *cobra.Command, profile *model.EmployeeProfile, estimate *model.EntitlementEstimate, analysis *model.CostAnalysis) error {
	store, err := openStorage(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	id, err := store.SaveAnalysis(cmd.Context(), &model.SavedAnalysis{
		Profile:  *profile,
		Estimate: *estimate,
		Analysis: analysis,
	})
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	slog.Info("Saved analysis to history", "id", id)
	return nil
}
