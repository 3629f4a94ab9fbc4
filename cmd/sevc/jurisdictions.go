package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quillhaven/severance-compass/internal/cli"
	"github.com/quillhaven/severance-compass/internal/format"
	"github.com/quillhaven/severance-compass/internal/jurisdiction"
)

func jurisdictionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jurisdictions",
		Short: "List jurisdiction rules, tax rates, and pricing tiers",
		RunE:  runJurisdictions,
	}
}

func runJurisdictions(cmd *cobra.Command, _ []string) error {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%-5s %-9s %-9s %-14s %-12s %s\n",
		"CODE", "TAX", "CONSULT", "HOURLY AVG", "FLAT", "CONTINGENCY"))

	for _, code := range jurisdiction.Codes() {
		pricing := jurisdiction.PricingFor(code)

		flat := "—"
		if pricing.HasFlat() {
			flat = format.Currency(pricing.Flat.Min) + "+"
		}
		contingency := "—"
		if pricing.HasContingency() {
			contingency = format.Percent(*pricing.ContingencyPercent)
		}

		b.WriteString(fmt.Sprintf("%-5s %-9s %-9s %-14s %-12s %s\n",
			code,
			format.Percent(jurisdiction.TaxRate(code)),
			format.Currency(pricing.Consultation.Average),
			format.Currency(pricing.Hourly.Average)+"/hr",
			flat,
			contingency,
		))
	}

	cmd.Println(cli.RenderBox("Jurisdictions", strings.TrimRight(b.String(), "\n")))
	return nil
}
