package model

// OptionType identifies a legal-engagement fee structure.
type OptionType string

// Option types, in canonical presentation order.
const (
	OptionConsultation OptionType = "consultation"
	OptionHourly       OptionType = "hourly"
	OptionFlat         OptionType = "flat"
	OptionContingency  OptionType = "contingency"
)

// OptionTypes returns all option types in canonical order.
func OptionTypes() []OptionType {
	return []OptionType{OptionConsultation, OptionHourly, OptionFlat, OptionContingency}
}

// CostOption is one tax-adjusted legal-engagement option. Options are
// constructed fresh per analysis and never persisted individually.
type CostOption struct {
	EstimatedRecovery *float64 // contingency only: gap minus total cost
	NetBenefit        *float64
	Type              OptionType
	Name              string
	Description       string
	BaseCost          float64
	TaxAmount         float64
	TotalCost         float64
}

// CostAnalysis is the full option menu for one potential gap, with one
// option designated as recommended. Immutable once constructed.
type CostAnalysis struct {
	Jurisdiction string
	Options      []CostOption
	Recommended  CostOption
	PotentialGap float64
}

// Option returns the analysis option of the given type, if present.
func (a *CostAnalysis) Option(t OptionType) (CostOption, bool) {
	for _, opt := range a.Options {
		if opt.Type == t {
			return opt, true
		}
	}
	return CostOption{}, false
}
