package model

import "time"

// SavedAnalysis is one persisted analysis run: the profile as entered,
// the entitlement estimate, and the cost analysis derived from it. Saved
// for the user's reference only; the engine never reads history back.
type SavedAnalysis struct {
	CreatedAt time.Time
	Analysis  *CostAnalysis
	Estimate  EntitlementEstimate
	Profile   EmployeeProfile
	ID        int64
}
