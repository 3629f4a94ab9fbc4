package cli

import (
	"fmt"
	"strings"

	"github.com/quillhaven/severance-compass/internal/format"
	"github.com/quillhaven/severance-compass/internal/model"
)

// RenderEstimate renders an entitlement estimate as a boxed summary.
func RenderEstimate(estimate *model.EntitlementEstimate) string {
	var b strings.Builder

	writeField(&b, "Statutory minimum", fmt.Sprintf("%d weeks (%s)",
		estimate.StatutoryMinimum.Weeks, format.Currency(estimate.StatutoryMinimum.Amount)))

	if sev := estimate.StatutorySeverance; sev != nil {
		writeField(&b, "Statutory severance", fmt.Sprintf("%d weeks (%s)",
			sev.Weeks, format.Currency(sev.Amount)))
	}

	writeField(&b, "Common-law range", fmt.Sprintf("%d–%d weeks (%s – %s)",
		estimate.CommonLaw.MinWeeks, estimate.CommonLaw.MaxWeeks,
		format.Currency(estimate.CommonLaw.MinAmount), format.Currency(estimate.CommonLaw.MaxAmount)))

	writeField(&b, "Recommended", BoldStyle.Render(fmt.Sprintf("%d weeks (%s)",
		estimate.Recommended.Weeks, format.Currency(estimate.Recommended.Amount))))

	return RenderBox("Severance Estimate", strings.TrimRight(b.String(), "\n"))
}

// RenderCostAnalysis renders the option menu with the recommendation flagged.
func RenderCostAnalysis(analysis *model.CostAnalysis) string {
	var b strings.Builder

	writeField(&b, "Potential gap", BoldStyle.Render(format.Currency(analysis.PotentialGap)))
	b.WriteString("\n")

	for _, opt := range analysis.Options {
		marker := "  "
		name := opt.Name
		if opt.Type == analysis.Recommended.Type {
			marker = RecommendedStyle.Render("▸ ")
			name = RecommendedStyle.Render(name + " (recommended)")
		}
		b.WriteString(marker + name + "\n")
		b.WriteString(SubtleStyle.Render("    "+opt.Description) + "\n")
		b.WriteString(fmt.Sprintf("    Cost %s (incl. %s tax)",
			format.Currency(opt.TotalCost), format.Currency(opt.TaxAmount)))
		if opt.NetBenefit != nil {
			b.WriteString(fmt.Sprintf(" · Net benefit %s", format.Currency(*opt.NetBenefit)))
		}
		if opt.EstimatedRecovery != nil {
			b.WriteString(fmt.Sprintf(" · Est. recovery %s", format.Currency(*opt.EstimatedRecovery)))
		}
		b.WriteString("\n")
	}

	return RenderBox("Legal Cost Options · "+analysis.Jurisdiction, strings.TrimRight(b.String(), "\n"))
}

// RenderGuidance renders the per-option guidance entries.
func RenderGuidance(entries []model.GuidanceEntry) string {
	if len(entries) == 0 {
		return SubtleStyle.Render("No guidance: there is nothing to negotiate.")
	}

	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(BoldStyle.Render(entry.Title) + "\n")
		b.WriteString(entry.Description + "\n")
		b.WriteString(SubtleStyle.Render("When to choose:") + "\n")
		for _, w := range entry.WhenToChoose {
			b.WriteString("  • " + w + "\n")
		}
		b.WriteString(SubtleStyle.Render("Considerations:") + "\n")
		for _, c := range entry.Considerations {
			b.WriteString("  • " + c + "\n")
		}
	}

	return RenderBox("Guidance", strings.TrimRight(b.String(), "\n"))
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(LabelStyle.Render(label+":") + " " + value + "\n")
}
