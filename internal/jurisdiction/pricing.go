package jurisdiction

// FeeRange describes a market fee band with its typical midpoint.
type FeeRange struct {
	Min     float64
	Max     float64
	Average float64
}

// FlatRange is an optional flat-fee band. Jurisdictions without an
// established flat-fee market omit it entirely.
type FlatRange struct {
	Min float64
	Max float64
}

// Pricing is one jurisdiction's legal-fee market data. Consultation and
// hourly tiers exist everywhere; flat-fee and contingency tiers only in
// markets where those arrangements are common. Reference data only,
// never mutated at runtime.
type Pricing struct {
	Flat               *FlatRange
	ContingencyPercent *float64
	Consultation       FeeRange
	Hourly             FeeRange
}

// HasFlat reports whether a flat-fee tier is defined.
func (p Pricing) HasFlat() bool { return p.Flat != nil }

// HasContingency reports whether a contingency tier is defined.
func (p Pricing) HasContingency() bool { return p.ContingencyPercent != nil }

func flatTier(min, max float64) *FlatRange {
	return &FlatRange{Min: min, Max: max}
}

func contingency(pct float64) *float64 {
	return &pct
}

// defaultPricing is the generic tier used for unrecognized codes.
var defaultPricing = Pricing{
	Consultation: FeeRange{Min: 400, Max: 550, Average: 475},
	Hourly:       FeeRange{Min: 250, Max: 450, Average: 350},
}

var pricingTable = map[string]Pricing{
	Ontario: {
		Consultation:       FeeRange{Min: 450, Max: 650, Average: 550},
		Hourly:             FeeRange{Min: 300, Max: 600, Average: 450},
		Flat:               flatTier(2500, 7500),
		ContingencyPercent: contingency(0.30),
	},
	BritishColumbia: {
		Consultation:       FeeRange{Min: 400, Max: 600, Average: 500},
		Hourly:             FeeRange{Min: 300, Max: 550, Average: 425},
		Flat:               flatTier(2500, 7000),
		ContingencyPercent: contingency(0.30),
	},
	Alberta: {
		Consultation:       FeeRange{Min: 400, Max: 600, Average: 500},
		Hourly:             FeeRange{Min: 275, Max: 500, Average: 400},
		Flat:               flatTier(2000, 6500),
		ContingencyPercent: contingency(0.33),
	},
	Quebec: {
		Consultation: FeeRange{Min: 350, Max: 550, Average: 450},
		Hourly:       FeeRange{Min: 250, Max: 500, Average: 375},
		Flat:         flatTier(2000, 6000),
	},
	Manitoba: {
		Consultation: FeeRange{Min: 350, Max: 500, Average: 425},
		Hourly:       FeeRange{Min: 250, Max: 450, Average: 350},
		Flat:         flatTier(1800, 5500),
	},
	Saskatchewan: {
		Consultation: FeeRange{Min: 350, Max: 500, Average: 425},
		Hourly:       FeeRange{Min: 250, Max: 425, Average: 340},
	},
	NovaScotia: {
		Consultation:       FeeRange{Min: 350, Max: 500, Average: 425},
		Hourly:             FeeRange{Min: 250, Max: 450, Average: 350},
		Flat:               flatTier(1800, 5000),
		ContingencyPercent: contingency(0.30),
	},
	NewBrunswick: {
		Consultation:       FeeRange{Min: 325, Max: 475, Average: 400},
		Hourly:             FeeRange{Min: 225, Max: 400, Average: 315},
		ContingencyPercent: contingency(0.30),
	},
	NewfoundlandLabrador: {
		Consultation:       FeeRange{Min: 325, Max: 475, Average: 400},
		Hourly:             FeeRange{Min: 225, Max: 400, Average: 315},
		ContingencyPercent: contingency(0.33),
	},
	PrinceEdwardIsland: {
		Consultation: FeeRange{Min: 300, Max: 450, Average: 375},
		Hourly:       FeeRange{Min: 200, Max: 375, Average: 290},
	},
	NorthwestTerritories: {
		Consultation: FeeRange{Min: 400, Max: 550, Average: 475},
		Hourly:       FeeRange{Min: 275, Max: 475, Average: 375},
	},
	Nunavut: {
		Consultation: FeeRange{Min: 400, Max: 550, Average: 475},
		Hourly:       FeeRange{Min: 275, Max: 475, Average: 375},
	},
	Yukon: {
		Consultation: FeeRange{Min: 400, Max: 550, Average: 475},
		Hourly:       FeeRange{Min: 275, Max: 475, Average: 375},
	},
	Federal: {
		Consultation:       FeeRange{Min: 450, Max: 650, Average: 550},
		Hourly:             FeeRange{Min: 300, Max: 600, Average: 450},
		Flat:               flatTier(2500, 7500),
		ContingencyPercent: contingency(0.30),
	},
}

// PricingFor returns the jurisdiction's legal-fee pricing, or the generic
// default tier for unrecognized codes.
func PricingFor(code string) Pricing {
	if p, ok := pricingTable[code]; ok {
		return p
	}
	return defaultPricing
}
