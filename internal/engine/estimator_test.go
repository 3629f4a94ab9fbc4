package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhaven/severance-compass/internal/common"
	"github.com/quillhaven/severance-compass/internal/model"
)

func validProfile() *model.EmployeeProfile {
	return &model.EmployeeProfile{
		Jurisdiction:   "ON",
		YearsOfService: 10,
		AgeBracket:     model.Age41To50,
		Position:       model.PositionProfessional,
		AnnualSalary:   104_000,
	}
}

func TestEstimate_GoldenOntarioProfile(t *testing.T) {
	// 10 years in Ontario at $104,000: weekly salary $2,000, age and
	// position multipliers both 1.2.
	estimate, err := Estimate(validProfile())
	require.NoError(t, err)

	assert.Equal(t, 8, estimate.StatutoryMinimum.Weeks)
	assert.InDelta(t, 16_000, estimate.StatutoryMinimum.Amount, 0.01)

	// No payroll declared, so statutory severance is not applicable.
	assert.Nil(t, estimate.StatutorySeverance)

	// baseMonths=2, adjusted=2*10*1.2*1.2=28.8, min=clamp(17.28,.5,6)=6,
	// max=min(34.56,24)=24 -> 26 and 104 weeks.
	assert.Equal(t, 26, estimate.CommonLaw.MinWeeks)
	assert.Equal(t, 104, estimate.CommonLaw.MaxWeeks)
	assert.InDelta(t, 52_000, estimate.CommonLaw.MinAmount, 0.01)
	assert.InDelta(t, 208_000, estimate.CommonLaw.MaxAmount, 0.01)

	assert.Equal(t, 65, estimate.Recommended.Weeks)
	assert.InDelta(t, 130_000, estimate.Recommended.Amount, 0.01)
}

func TestEstimate_UnionMemberShortCircuits(t *testing.T) {
	profile := validProfile()
	profile.UnionMember = true
	payroll := 5_000_000.0
	profile.EmployerPayroll = &payroll

	estimate, err := Estimate(profile)
	require.NoError(t, err)

	assert.True(t, estimate.IsZero())
	assert.Equal(t, 0, estimate.StatutoryMinimum.Weeks)
	assert.Zero(t, estimate.StatutoryMinimum.Amount)
	assert.Nil(t, estimate.StatutorySeverance)
	assert.Equal(t, 0, estimate.CommonLaw.MinWeeks)
	assert.Equal(t, 0, estimate.CommonLaw.MaxWeeks)
	assert.Zero(t, estimate.Recommended.Amount)
}

func TestEstimate_ZeroServiceBoundary(t *testing.T) {
	profile := validProfile()
	profile.YearsOfService = 0
	profile.MonthsOfService = 0
	profile.AnnualSalary = 52_000 // weekly 1,000

	estimate, err := Estimate(profile)
	require.NoError(t, err)

	assert.Equal(t, 0, estimate.StatutoryMinimum.Weeks)

	// adjustedMonths is 0, so the min floors at 0.5 months and the max
	// clamps up to it: a single [2,2]-week band.
	assert.Equal(t, 2, estimate.CommonLaw.MinWeeks)
	assert.Equal(t, 2, estimate.CommonLaw.MaxWeeks)
	assert.Equal(t, 2, estimate.Recommended.Weeks)
	assert.InDelta(t, 2_000, estimate.Recommended.Amount, 0.01)
}

func TestEstimate_StatutorySeveranceGating(t *testing.T) {
	bigPayroll := 2_500_000.0
	smallPayroll := 2_499_999.0

	tests := []struct {
		payroll      *float64
		name         string
		jurisdiction string
		years        int
		months       int
		wantWeeks    int
		wantPresent  bool
	}{
		{name: "ontario, tenure and payroll met", jurisdiction: "ON", years: 10, payroll: &bigPayroll, wantPresent: true, wantWeeks: 10},
		{name: "ontario, payroll below threshold", jurisdiction: "ON", years: 10, payroll: &smallPayroll, wantPresent: false},
		{name: "ontario, payroll undeclared", jurisdiction: "ON", years: 10, wantPresent: false},
		{name: "ontario, under five years", jurisdiction: "ON", years: 4, months: 11, payroll: &bigPayroll, wantPresent: false},
		{name: "ontario, exactly five years", jurisdiction: "ON", years: 5, payroll: &bigPayroll, wantPresent: true, wantWeeks: 5},
		{name: "ontario, capped at 26 weeks", jurisdiction: "ON", years: 30, payroll: &bigPayroll, wantPresent: true, wantWeeks: 26},
		{name: "other jurisdiction never applies", jurisdiction: "BC", years: 10, payroll: &bigPayroll, wantPresent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			profile.Jurisdiction = tt.jurisdiction
			profile.YearsOfService = tt.years
			profile.MonthsOfService = tt.months
			profile.EmployerPayroll = tt.payroll

			estimate, err := Estimate(profile)
			require.NoError(t, err)

			if !tt.wantPresent {
				assert.Nil(t, estimate.StatutorySeverance)
				return
			}
			require.NotNil(t, estimate.StatutorySeverance)
			assert.Equal(t, tt.wantWeeks, estimate.StatutorySeverance.Weeks)
		})
	}
}

func TestEstimate_RecommendedWithinCommonLawRange(t *testing.T) {
	for _, years := range []int{0, 1, 2, 5, 10, 25, 40} {
		for _, age := range model.AgeBrackets() {
			profile := validProfile()
			profile.YearsOfService = years
			profile.AgeBracket = age

			estimate, err := Estimate(profile)
			require.NoError(t, err)

			assert.LessOrEqual(t, estimate.CommonLaw.MinWeeks, estimate.CommonLaw.MaxWeeks)
			assert.LessOrEqual(t, estimate.CommonLaw.MinAmount, estimate.Recommended.Amount,
				"years=%d age=%s", years, age)
			assert.GreaterOrEqual(t, estimate.CommonLaw.MaxAmount, estimate.Recommended.Amount,
				"years=%d age=%s", years, age)
		}
	}
}

func TestEstimate_AgeMonotonicity(t *testing.T) {
	prevMin, prevMax := -1, -1
	for _, age := range model.AgeBrackets() {
		profile := validProfile()
		profile.AgeBracket = age

		estimate, err := Estimate(profile)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, estimate.CommonLaw.MinWeeks, prevMin, "bracket %s", age)
		assert.GreaterOrEqual(t, estimate.CommonLaw.MaxWeeks, prevMax, "bracket %s", age)
		prevMin, prevMax = estimate.CommonLaw.MinWeeks, estimate.CommonLaw.MaxWeeks
	}
}

func TestEstimate_PositionMonotonicity(t *testing.T) {
	prevMin, prevMax := -1, -1
	for _, position := range model.Positions() {
		profile := validProfile()
		profile.Position = position

		estimate, err := Estimate(profile)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, estimate.CommonLaw.MinWeeks, prevMin, "position %s", position)
		assert.GreaterOrEqual(t, estimate.CommonLaw.MaxWeeks, prevMax, "position %s", position)
		prevMin, prevMax = estimate.CommonLaw.MinWeeks, estimate.CommonLaw.MaxWeeks
	}
}

func TestEstimate_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		mutate  func(*model.EmployeeProfile)
		wantErr error
		name    string
	}{
		{name: "zero salary", mutate: func(p *model.EmployeeProfile) { p.AnnualSalary = 0 }, wantErr: common.ErrInvalidSalary},
		{name: "negative salary", mutate: func(p *model.EmployeeProfile) { p.AnnualSalary = -50_000 }, wantErr: common.ErrInvalidSalary},
		{name: "negative years", mutate: func(p *model.EmployeeProfile) { p.YearsOfService = -1 }, wantErr: common.ErrInvalidService},
		{name: "months too high", mutate: func(p *model.EmployeeProfile) { p.MonthsOfService = 12 }, wantErr: common.ErrInvalidService},
		{name: "negative months", mutate: func(p *model.EmployeeProfile) { p.MonthsOfService = -1 }, wantErr: common.ErrInvalidService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			tt.mutate(profile)

			estimate, err := Estimate(profile)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, estimate)
		})
	}
}

func TestEstimate_UnknownJurisdictionFallsBack(t *testing.T) {
	profile := validProfile()
	profile.Jurisdiction = "ZZ"

	estimate, err := Estimate(profile)
	require.NoError(t, err)

	// Default formula: min(floor(10), 8).
	assert.Equal(t, 8, estimate.StatutoryMinimum.Weeks)
}
