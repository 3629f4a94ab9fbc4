package engine

import (
	"math"

	"github.com/quillhaven/severance-compass/internal/jurisdiction"
	"github.com/quillhaven/severance-compass/internal/model"
)

// Overrides lets callers replace the table-driven defaults used when
// generating cost options. Nil fields mean "use the default"; a zero
// value is a legitimate override, so sentinels are never used here.
type Overrides struct {
	EstimatedHours     *float64
	FlatFee            *float64
	ContingencyPercent *float64
	TaxRate            *float64
}

// Complexity tiers for hourly estimates. Larger gaps mean more contested
// negotiations, so both the base hours and the multiplier scale with the
// same thresholds.
const (
	gapModerateThreshold = 10_000.0
	gapComplexThreshold  = 30_000.0
)

func baseHours(gap float64) float64 {
	switch {
	case gap < gapModerateThreshold:
		return 5
	case gap < gapComplexThreshold:
		return 8
	default:
		return 12
	}
}

func complexityMultiplier(gap float64) float64 {
	switch {
	case gap < gapModerateThreshold:
		return 1.0
	case gap < gapComplexThreshold:
		return 1.5
	default:
		return 2.0
	}
}

// PotentialGap computes the monetary stake an analysis is based on: the
// shortfall against the employer's offer when one exists and leaves money
// on the table, otherwise the upside over the statutory floor. The same
// cost/benefit framing applies either way, so the two cases deliberately
// share one value.
func PotentialGap(offer *float64, recommendedAmount, statutoryMinimum float64) float64 {
	if offer != nil {
		if gap := recommendedAmount - *offer; gap > 0 {
			return gap
		}
	}
	if gap := recommendedAmount - statutoryMinimum; gap > 0 {
		return gap
	}
	return 0
}

// GenerateOptions produces the tax-adjusted legal-engagement menu for a
// potential gap. A consultation is always offered; hourly, flat-fee, and
// contingency options exist only when there is value to pursue (and, for
// the latter two, only when the jurisdiction's market defines that tier).
func GenerateOptions(pricing jurisdiction.Pricing, taxRate, potentialGap float64, ov Overrides) []model.CostOption {
	if ov.TaxRate != nil {
		taxRate = *ov.TaxRate
	}

	hasValue := potentialGap > 0
	options := make([]model.CostOption, 0, 4)

	consult := newOption(model.OptionConsultation, "Initial Consultation",
		"One-time meeting with an employment lawyer to assess your case",
		pricing.Consultation.Average, taxRate)
	if hasValue {
		consult.NetBenefit = ptr(potentialGap - consult.TotalCost)
	} else {
		consult.NetBenefit = ptr(-consult.TotalCost)
	}
	options = append(options, consult)

	if !hasValue {
		return options
	}

	hours := baseHours(potentialGap) * complexityMultiplier(potentialGap)
	if ov.EstimatedHours != nil {
		hours = *ov.EstimatedHours
	}
	hourly := newOption(model.OptionHourly, "Hourly Representation",
		"Ongoing negotiation billed at market hourly rates",
		math.Round(pricing.Hourly.Average*hours), taxRate)
	hourly.NetBenefit = ptr(potentialGap - hourly.TotalCost)
	options = append(options, hourly)

	if pricing.HasFlat() {
		fee := pricing.Flat.Min
		if ov.FlatFee != nil {
			fee = *ov.FlatFee
		}
		flat := newOption(model.OptionFlat, "Flat-Fee Engagement",
			"Full severance negotiation for a fixed, all-in fee",
			fee, taxRate)
		flat.NetBenefit = ptr(potentialGap - flat.TotalCost)
		options = append(options, flat)
	}

	if pricing.HasContingency() {
		pct := *pricing.ContingencyPercent
		if ov.ContingencyPercent != nil {
			pct = *ov.ContingencyPercent
		}
		cont := newOption(model.OptionContingency, "Contingency Arrangement",
			"No upfront fee; the lawyer takes a percentage of what is recovered",
			math.Round(potentialGap*pct), taxRate)
		recovery := potentialGap - cont.TotalCost
		cont.EstimatedRecovery = ptr(recovery)
		// For contingency the recovery itself is the benefit measure: the
		// fee only exists if the gap is recovered.
		cont.NetBenefit = ptr(recovery)
		options = append(options, cont)
	}

	return options
}

// AnalyzeLegalCosts runs the full cost pipeline: fold the offer and the
// statutory floor into a potential gap, generate the option menu, pick a
// recommendation, and package the result.
func AnalyzeLegalCosts(pricing jurisdiction.Pricing, code string, offer *float64, recommendedAmount, statutoryMinimum float64, ov Overrides) *model.CostAnalysis {
	potentialGap := PotentialGap(offer, recommendedAmount, statutoryMinimum)
	options := GenerateOptions(pricing, jurisdiction.TaxRate(code), potentialGap, ov)
	recommended := Recommend(options, potentialGap)

	return &model.CostAnalysis{
		Jurisdiction: code,
		PotentialGap: potentialGap,
		Options:      options,
		Recommended:  recommended,
	}
}

func newOption(t model.OptionType, name, description string, baseCost, taxRate float64) model.CostOption {
	tax := math.Round(baseCost * taxRate)
	return model.CostOption{
		Type:        t,
		Name:        name,
		Description: description,
		BaseCost:    baseCost,
		TaxAmount:   tax,
		TotalCost:   baseCost + tax,
	}
}

func ptr(v float64) *float64 {
	return &v
}
