// Package jurisdiction holds the static per-jurisdiction reference data:
// statutory notice rules, sales-tax rates on legal services, and legal-fee
// pricing tiers. All tables are immutable after process start; lookups are
// pure functions safe for concurrent use.
package jurisdiction

import (
	"math"
	"sort"
)

// Canadian jurisdiction codes.
const (
	Alberta              = "AB"
	BritishColumbia      = "BC"
	Manitoba             = "MB"
	NewBrunswick         = "NB"
	NewfoundlandLabrador = "NL"
	NorthwestTerritories = "NT"
	NovaScotia           = "NS"
	Nunavut              = "NU"
	Ontario              = "ON"
	PrinceEdwardIsland   = "PE"
	Quebec               = "QC"
	Saskatchewan         = "SK"
	Yukon                = "YT"
	Federal              = "FED"
)

// noticeFormula selects the statutory-minimum notice computation.
// Adding a jurisdiction is a table edit, not a new conditional branch.
type noticeFormula int

const (
	// formulaStandard: min(floor(totalYears), cap).
	formulaStandard noticeFormula = iota
	// formulaFederal: 0 under one year, else min(2+floor(totalYears-1), cap).
	formulaFederal
)

// NoticeRule is one jurisdiction's statutory-minimum notice rule.
type NoticeRule struct {
	CapWeeks int
	formula  noticeFormula
}

// defaultNoticeRule applies to unrecognized jurisdiction codes.
var defaultNoticeRule = NoticeRule{CapWeeks: 8, formula: formulaStandard}

var noticeRules = map[string]NoticeRule{
	Alberta:              {CapWeeks: 8, formula: formulaStandard},
	BritishColumbia:      {CapWeeks: 8, formula: formulaStandard},
	Manitoba:             {CapWeeks: 8, formula: formulaStandard},
	NewBrunswick:         {CapWeeks: 8, formula: formulaStandard},
	NewfoundlandLabrador: {CapWeeks: 4, formula: formulaStandard},
	NorthwestTerritories: {CapWeeks: 8, formula: formulaStandard},
	NovaScotia:           {CapWeeks: 8, formula: formulaStandard},
	Nunavut:              {CapWeeks: 8, formula: formulaStandard},
	Ontario:              {CapWeeks: 8, formula: formulaStandard},
	PrinceEdwardIsland:   {CapWeeks: 4, formula: formulaStandard},
	Quebec:               {CapWeeks: 8, formula: formulaStandard},
	Saskatchewan:         {CapWeeks: 8, formula: formulaStandard},
	Yukon:                {CapWeeks: 8, formula: formulaStandard},
	Federal:              {CapWeeks: 8, formula: formulaFederal},
}

// Known reports whether code is a recognized jurisdiction. Unrecognized
// codes are not errors; every lookup falls back to documented defaults.
func Known(code string) bool {
	_, ok := noticeRules[code]
	return ok
}

// Codes returns all recognized jurisdiction codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(noticeRules))
	for c := range noticeRules {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// NoticeWeeks computes the statutory-minimum notice for a jurisdiction
// and length of service. Unrecognized codes use the standard 8-week-cap
// formula.
func NoticeWeeks(code string, totalYears float64) int {
	rule, ok := noticeRules[code]
	if !ok {
		rule = defaultNoticeRule
	}

	switch rule.formula {
	case formulaFederal:
		if totalYears < 1 {
			return 0
		}
		weeks := 2 + int(math.Floor(totalYears-1))
		if weeks > rule.CapWeeks {
			return rule.CapWeeks
		}
		return weeks
	default:
		weeks := int(math.Floor(totalYears))
		if weeks > rule.CapWeeks {
			return rule.CapWeeks
		}
		return weeks
	}
}

// Statutory severance applies in Ontario only, gated on tenure and
// employer payroll size.
const (
	SeveranceJurisdiction = Ontario
	SeveranceMinYears     = 5.0
	SeverancePayrollMin   = 2_500_000.0
	SeveranceCapWeeks     = 26
)

// SeveranceWeeks returns the statutory severance weeks for a jurisdiction,
// tenure, and declared employer payroll. The second return is false when
// statutory severance does not apply at all; callers must not conflate
// that with an applicable zero entitlement.
func SeveranceWeeks(code string, totalYears float64, payroll *float64) (weeks int, applicable bool) {
	if code != SeveranceJurisdiction {
		return 0, false
	}
	if totalYears < SeveranceMinYears {
		return 0, false
	}
	if payroll == nil || *payroll < SeverancePayrollMin {
		return 0, false
	}

	weeks = int(math.Floor(totalYears))
	if weeks > SeveranceCapWeeks {
		weeks = SeveranceCapWeeks
	}
	return weeks, true
}

// DefaultTaxRate applies to unrecognized jurisdiction codes.
const DefaultTaxRate = 0.05

// taxRates holds the combined sales-tax rate on legal services.
var taxRates = map[string]float64{
	Alberta:              0.05,
	BritishColumbia:      0.12,
	Manitoba:             0.12,
	NewBrunswick:         0.15,
	NewfoundlandLabrador: 0.15,
	NorthwestTerritories: 0.05,
	NovaScotia:           0.15,
	Nunavut:              0.05,
	Ontario:              0.13,
	PrinceEdwardIsland:   0.15,
	Quebec:               0.14975,
	Saskatchewan:         0.11,
	Yukon:                0.05,
	Federal:              0.05,
}

// TaxRate returns the sales-tax rate applied to legal fees in a
// jurisdiction, or DefaultTaxRate for unrecognized codes.
func TaxRate(code string) float64 {
	if rate, ok := taxRates[code]; ok {
		return rate
	}
	return DefaultTaxRate
}
