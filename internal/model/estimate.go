package model

// NoticePeriod pairs a notice length in weeks with its dollar value.
type NoticePeriod struct {
	Weeks  int
	Amount float64
}

// CommonLawRange is the estimated reasonable-notice band under common law.
type CommonLawRange struct {
	MinWeeks  int
	MaxWeeks  int
	MinAmount float64
	MaxAmount float64
}

// EntitlementEstimate is the engine's severance estimate for one profile.
//
// StatutorySeverance is nil when the jurisdiction or employer does not
// attract statutory severance at all. A non-nil zero value would wrongly
// signal "applicable but nothing due", so absence is modeled explicitly.
type EntitlementEstimate struct {
	StatutorySeverance *NoticePeriod
	StatutoryMinimum   NoticePeriod
	CommonLaw          CommonLawRange
	Recommended        NoticePeriod
}

// IsZero reports whether the estimate is the all-zero short-circuit
// produced for unionized employees.
func (e *EntitlementEstimate) IsZero() bool {
	return e.StatutoryMinimum.Weeks == 0 &&
		e.StatutoryMinimum.Amount == 0 &&
		e.StatutorySeverance == nil &&
		e.CommonLaw.MaxWeeks == 0 &&
		e.Recommended.Amount == 0
}
