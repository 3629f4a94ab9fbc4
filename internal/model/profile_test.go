package model

import (
	"errors"
	"testing"

	"github.com/quillhaven/severance-compass/internal/common"
)

func TestEmployeeProfile_Validate(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		profile EmployeeProfile
	}{
		{
			name: "valid profile",
			profile: EmployeeProfile{
				Jurisdiction:   "ON",
				YearsOfService: 10,
				AgeBracket:     Age41To50,
				Position:       PositionProfessional,
				AnnualSalary:   104_000,
			},
		},
		{
			name: "months at upper bound",
			profile: EmployeeProfile{
				Jurisdiction:    "BC",
				YearsOfService:  2,
				MonthsOfService: 11,
				AnnualSalary:    60_000,
			},
		},
		{
			name:    "zero salary",
			profile: EmployeeProfile{Jurisdiction: "ON", AnnualSalary: 0},
			wantErr: common.ErrInvalidSalary,
		},
		{
			name:    "negative salary",
			profile: EmployeeProfile{Jurisdiction: "ON", AnnualSalary: -1},
			wantErr: common.ErrInvalidSalary,
		},
		{
			name:    "negative years",
			profile: EmployeeProfile{Jurisdiction: "ON", YearsOfService: -1, AnnualSalary: 60_000},
			wantErr: common.ErrInvalidService,
		},
		{
			name:    "months out of range",
			profile: EmployeeProfile{Jurisdiction: "ON", MonthsOfService: 12, AnnualSalary: 60_000},
			wantErr: common.ErrInvalidService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEmployeeProfile_TotalYears(t *testing.T) {
	p := EmployeeProfile{YearsOfService: 4, MonthsOfService: 6}
	if got := p.TotalYears(); got != 4.5 {
		t.Fatalf("expected 4.5, got %v", got)
	}
}

func TestAgeBracketMultipliersAreMonotonic(t *testing.T) {
	prev := 0.0
	for _, bracket := range AgeBrackets() {
		mult, ok := bracket.Multiplier()
		if !ok {
			t.Fatalf("bracket %s has no multiplier", bracket)
		}
		if mult <= prev {
			t.Fatalf("bracket %s multiplier %v is not greater than %v", bracket, mult, prev)
		}
		prev = mult
	}
}

func TestPositionMultipliersAreOrdered(t *testing.T) {
	prev := 0.0
	for _, position := range Positions() {
		mult, ok := position.Multiplier()
		if !ok {
			t.Fatalf("position %s has no multiplier", position)
		}
		if mult < prev {
			t.Fatalf("position %s multiplier %v is below %v", position, mult, prev)
		}
		prev = mult
	}
}

func TestUnknownMultipliersFallBackToNeutral(t *testing.T) {
	if mult, ok := AgeBracket("unknown").Multiplier(); ok || mult != 1.0 {
		t.Fatalf("expected neutral fallback, got %v ok=%v", mult, ok)
	}
	if mult, ok := Position("unknown").Multiplier(); ok || mult != 1.0 {
		t.Fatalf("expected neutral fallback, got %v ok=%v", mult, ok)
	}
}
