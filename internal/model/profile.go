// Package model defines the core types shared between the estimation
// engine, the storage layer, and the command surfaces.
package model

import (
	"fmt"

	"github.com/quillhaven/severance-compass/internal/common"
)

// AgeBracket is an ordered age category used by the common-law notice model.
type AgeBracket string

// Age brackets, youngest to oldest.
const (
	AgeUnder30 AgeBracket = "under-30"
	Age30To40  AgeBracket = "30-40"
	Age41To50  AgeBracket = "41-50"
	Age51To55  AgeBracket = "51-55"
	Age56To60  AgeBracket = "56-60"
	AgeOver60  AgeBracket = "over-60"
)

// ageMultipliers maps each bracket to its common-law notice multiplier.
// Older employees face longer job searches, so multipliers increase
// monotonically with age.
var ageMultipliers = map[AgeBracket]float64{
	AgeUnder30: 0.8,
	Age30To40:  1.0,
	Age41To50:  1.2,
	Age51To55:  1.4,
	Age56To60:  1.6,
	AgeOver60:  1.8,
}

// Multiplier returns the bracket's notice multiplier. Unknown brackets
// fall back to 1.0, reported via ok.
func (b AgeBracket) Multiplier() (mult float64, ok bool) {
	if m, found := ageMultipliers[b]; found {
		return m, true
	}
	return 1.0, false
}

// AgeBrackets returns all brackets in ascending order.
func AgeBrackets() []AgeBracket {
	return []AgeBracket{AgeUnder30, Age30To40, Age41To50, Age51To55, Age56To60, AgeOver60}
}

// Position is a job-position category used by the common-law notice model.
type Position string

// Position categories. Management tiers carry the highest multipliers,
// reflecting the longer notice periods courts award senior employees.
const (
	PositionEntryLevel    Position = "entry-level"
	PositionLabourer      Position = "labourer"
	PositionClerical      Position = "clerical"
	PositionTrades        Position = "trades"
	PositionTechnical     Position = "technical"
	PositionSales         Position = "sales"
	PositionProfessional  Position = "professional"
	PositionSupervisor    Position = "supervisor"
	PositionManager       Position = "manager"
	PositionSeniorManager Position = "senior-manager"
	PositionExecutive     Position = "executive"
)

var positionMultipliers = map[Position]float64{
	PositionEntryLevel:    0.8,
	PositionLabourer:      0.9,
	PositionClerical:      0.95,
	PositionTrades:        1.0,
	PositionTechnical:     1.05,
	PositionSales:         1.1,
	PositionProfessional:  1.2,
	PositionSupervisor:    1.3,
	PositionManager:       1.5,
	PositionSeniorManager: 1.65,
	PositionExecutive:     1.8,
}

// Multiplier returns the position's notice multiplier. Unknown positions
// fall back to 1.0, reported via ok.
func (p Position) Multiplier() (mult float64, ok bool) {
	if m, found := positionMultipliers[p]; found {
		return m, true
	}
	return 1.0, false
}

// Positions returns all position categories in ascending multiplier order.
func Positions() []Position {
	return []Position{
		PositionEntryLevel, PositionLabourer, PositionClerical,
		PositionTrades, PositionTechnical, PositionSales,
		PositionProfessional, PositionSupervisor, PositionManager,
		PositionSeniorManager, PositionExecutive,
	}
}

// EmployeeProfile describes a terminated employee for entitlement estimation.
type EmployeeProfile struct {
	EmployerPayroll *float64 // employer's total annual payroll, if declared
	CurrentOffer    *float64 // employer's severance offer, if any
	Jurisdiction    string
	AgeBracket      AgeBracket
	Position        Position
	AnnualSalary    float64
	YearsOfService  int
	MonthsOfService int // 0-11, on top of whole years
	UnionMember     bool
}

// TotalYears returns the length of service as a fractional year count.
func (p *EmployeeProfile) TotalYears() float64 {
	return float64(p.YearsOfService) + float64(p.MonthsOfService)/12.0
}

// WeeklySalary derives the weekly wage from the annual salary. A flat 52
// weeks per year is used throughout; entitlements are estimates, not
// payroll calculations.
func (p *EmployeeProfile) WeeklySalary() float64 {
	return p.AnnualSalary / 52.0
}

// Validate rejects profiles the engine must not compute on. Entitlement
// amounts are legally consequential, so malformed inputs are surfaced as
// errors rather than clamped into range.
func (p *EmployeeProfile) Validate() error {
	if p.AnnualSalary <= 0 {
		return fmt.Errorf("%w: got %.2f", common.ErrInvalidSalary, p.AnnualSalary)
	}
	if p.YearsOfService < 0 {
		return fmt.Errorf("%w: years of service %d is negative", common.ErrInvalidService, p.YearsOfService)
	}
	if p.MonthsOfService < 0 || p.MonthsOfService > 11 {
		return fmt.Errorf("%w: months of service must be 0-11, got %d", common.ErrInvalidService, p.MonthsOfService)
	}
	return nil
}
