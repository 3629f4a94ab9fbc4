package engine

import (
	"fmt"

	"github.com/quillhaven/severance-compass/internal/format"
	"github.com/quillhaven/severance-compass/internal/model"
)

// ComposeGuidance maps generated options to "when to choose" and
// "considerations" copy, one entry per option type present, in canonical
// order. The dollar thresholds in the copy are advisory framing only;
// they never gate which options were generated.
//
// With no gap there is nothing to negotiate, so no guidance is produced.
func ComposeGuidance(potentialGap float64, options []model.CostOption) []model.GuidanceEntry {
	if potentialGap <= 0 {
		return nil
	}

	byType := make(map[model.OptionType]model.CostOption, len(options))
	for _, opt := range options {
		byType[opt.Type] = opt
	}

	entries := make([]model.GuidanceEntry, 0, len(byType))
	for _, t := range model.OptionTypes() {
		opt, ok := byType[t]
		if !ok {
			continue
		}
		entries = append(entries, guidanceFor(opt, potentialGap))
	}

	return entries
}

func guidanceFor(opt model.CostOption, potentialGap float64) model.GuidanceEntry {
	switch opt.Type {
	case model.OptionHourly:
		return hourlyGuidance(opt)
	case model.OptionFlat:
		return flatGuidance(opt)
	case model.OptionContingency:
		return contingencyGuidance(opt, potentialGap)
	default:
		return consultationGuidance(opt)
	}
}

func consultationGuidance(opt model.CostOption) model.GuidanceEntry {
	return model.GuidanceEntry{
		Type:        model.OptionConsultation,
		Title:       opt.Name,
		Description: fmt.Sprintf("A one-time case assessment for %s including tax.", format.Currency(opt.TotalCost)),
		WhenToChoose: []string{
			"Your potential gap is under $5,000",
			"You want a professional read on your position before committing to anything",
			"The employer's offer already looks close to fair",
		},
		Considerations: []string{
			fmt.Sprintf("You pay %s whether or not you pursue the claim", format.Currency(opt.TotalCost)),
			"Advice only; the lawyer does not negotiate on your behalf",
		},
	}
}

func hourlyGuidance(opt model.CostOption) model.GuidanceEntry {
	entry := model.GuidanceEntry{
		Type:        model.OptionHourly,
		Title:       opt.Name,
		Description: fmt.Sprintf("Ongoing representation estimated at %s including tax.", format.Currency(opt.TotalCost)),
		WhenToChoose: []string{
			"Your potential gap is in the $5,000–$25,000 range",
			"The negotiation is likely to resolve in a few exchanges",
			"You want control over how much work the lawyer takes on",
		},
		Considerations: []string{
			"Fees accrue by the hour whether or not the recovery improves",
			fmt.Sprintf("Estimated total of %s can grow if the employer digs in", format.Currency(opt.TotalCost)),
		},
	}
	if opt.NetBenefit != nil {
		entry.Considerations = append(entry.Considerations,
			fmt.Sprintf("Projected net benefit: %s", format.Currency(*opt.NetBenefit)))
	}
	return entry
}

func flatGuidance(opt model.CostOption) model.GuidanceEntry {
	entry := model.GuidanceEntry{
		Type:        model.OptionFlat,
		Title:       opt.Name,
		Description: fmt.Sprintf("A full negotiation for a fixed %s including tax.", format.Currency(opt.TotalCost)),
		WhenToChoose: []string{
			"Your potential gap is $10,000 or more",
			"You want complete cost certainty before engaging",
		},
		Considerations: []string{
			fmt.Sprintf("The %s fee is owed regardless of hours spent or outcome", format.Currency(opt.TotalCost)),
		},
	}
	if opt.NetBenefit != nil {
		entry.Considerations = append(entry.Considerations,
			fmt.Sprintf("Projected net benefit: %s", format.Currency(*opt.NetBenefit)))
	}
	return entry
}

func contingencyGuidance(opt model.CostOption, potentialGap float64) model.GuidanceEntry {
	entry := model.GuidanceEntry{
		Type:        model.OptionContingency,
		Title:       opt.Name,
		Description: fmt.Sprintf("No upfront cost; the fee of %s comes out of the recovery.", format.Currency(opt.TotalCost)),
		WhenToChoose: []string{
			"Your potential gap is $15,000 or more",
			"You cannot or do not want to fund legal fees upfront",
			"You are comfortable sharing a percentage of the recovery",
		},
		Considerations: []string{
			fmt.Sprintf("The fee scales with the %s at stake, not the hours worked", format.Currency(potentialGap)),
		},
	}
	if opt.EstimatedRecovery != nil {
		entry.Considerations = append(entry.Considerations,
			fmt.Sprintf("Estimated net recovery: %s", format.Currency(*opt.EstimatedRecovery)))
	}
	return entry
}
