// Package engine implements the severance entitlement estimator and the
// legal-cost recommendation pipeline. Every function here is a pure,
// synchronous computation over its inputs and the static jurisdiction
// tables; concurrent calls never interact.
package engine

import (
	"math"

	"github.com/quillhaven/severance-compass/internal/jurisdiction"
	"github.com/quillhaven/severance-compass/internal/model"
)

// Common-law notice model constants. Months convert to weeks at 4.33;
// bounds are widened to 60%/120% of the adjusted notice and clamped to
// the bands courts actually award.
const (
	weeksPerMonth  = 4.33
	baseMonthsMin  = 1.0
	baseMonthsMax  = 2.0
	minMonthsFloor = 0.5
	minMonthsCeil  = 6.0
	maxMonthsCeil  = 24.0
	minFactor      = 0.6
	maxFactor      = 1.2
)

// Estimate computes the full entitlement estimate for a profile: the
// statutory-minimum notice, statutory severance where it applies, the
// common-law notice range, and a recommended midpoint.
//
// Unionized employees get an all-zero estimate: collectively-bargained
// severance is governed by the agreement, not common law, so the profile
// is out of the engine's domain.
func Estimate(profile *model.EmployeeProfile) (*model.EntitlementEstimate, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if profile.UnionMember {
		return &model.EntitlementEstimate{}, nil
	}

	totalYears := profile.TotalYears()
	weekly := profile.WeeklySalary()

	statWeeks := jurisdiction.NoticeWeeks(profile.Jurisdiction, totalYears)
	estimate := &model.EntitlementEstimate{
		StatutoryMinimum: model.NoticePeriod{
			Weeks:  statWeeks,
			Amount: roundCurrency(float64(statWeeks) * weekly),
		},
	}

	if sevWeeks, ok := jurisdiction.SeveranceWeeks(profile.Jurisdiction, totalYears, profile.EmployerPayroll); ok {
		estimate.StatutorySeverance = &model.NoticePeriod{
			Weeks:  sevWeeks,
			Amount: roundCurrency(float64(sevWeeks) * weekly),
		}
	}

	estimate.CommonLaw = commonLawRange(profile, totalYears, weekly)

	recWeeks := int(math.Round(float64(estimate.CommonLaw.MinWeeks+estimate.CommonLaw.MaxWeeks) / 2))
	estimate.Recommended = model.NoticePeriod{
		Weeks:  recWeeks,
		Amount: roundCurrency(float64(recWeeks) * weekly),
	}

	return estimate, nil
}

// commonLawRange estimates the reasonable-notice band from tenure, age,
// and position. Unknown age brackets or positions fall back to a neutral
// 1.0 multiplier rather than failing the whole estimate.
func commonLawRange(profile *model.EmployeeProfile, totalYears, weekly float64) model.CommonLawRange {
	ageMult, _ := profile.AgeBracket.Multiplier()
	posMult, _ := profile.Position.Multiplier()

	baseMonths := clamp(totalYears, baseMonthsMin, baseMonthsMax)
	adjustedMonths := baseMonths * totalYears * ageMult * posMult

	minMonths := clamp(adjustedMonths*minFactor, minMonthsFloor, minMonthsCeil)
	maxMonths := math.Min(adjustedMonths*maxFactor, maxMonthsCeil)

	// At very short tenures the widening factors can invert the band
	// (e.g. zero service: min floors at 0.5 months, max is 0). Clamp the
	// upper bound up to the floor so the range stays well-formed.
	if maxMonths < minMonths {
		maxMonths = minMonths
	}

	minWeeks := int(math.Round(minMonths * weeksPerMonth))
	maxWeeks := int(math.Round(maxMonths * weeksPerMonth))
	if maxWeeks < minWeeks {
		maxWeeks = minWeeks
	}

	return model.CommonLawRange{
		MinWeeks:  minWeeks,
		MaxWeeks:  maxWeeks,
		MinAmount: roundCurrency(float64(minWeeks) * weekly),
		MaxAmount: roundCurrency(float64(maxWeeks) * weekly),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundCurrency rounds to the nearest whole currency unit. All amounts
// the engine emits are whole dollars.
func roundCurrency(amount float64) float64 {
	return math.Round(amount)
}
