package config

import "github.com/trident-energy/riskregister/pkg/domain/types"

// Taxonomy carries the status conventions baked into the reporting queries:
// which risk status means closed/excluded, and which action plan statuses
// count as open work.
type Taxonomy struct {
	ClosedStatusID   int64
	OpenPlanStatuses []types.PlanStatus
}

// DefaultTaxonomy returns the conventions of the production schema.
func DefaultTaxonomy() *Taxonomy {
	return &Taxonomy{
		ClosedStatusID: 4,
		OpenPlanStatuses: []types.PlanStatus{
			types.PlanStatusOpen,
			types.PlanStatusInProgress,
		},
	}
}

// IsOpenPlanStatus reports whether the given status counts as open work.
func (x *Taxonomy) IsOpenPlanStatus(status string) bool {
	for _, s := range x.OpenPlanStatuses {
		if s.String() == status {
			return true
		}
	}
	return false
}

// OpenPlanStatusStrings returns the open statuses as plain strings for use
// as query parameters.
func (x *Taxonomy) OpenPlanStatusStrings() []string {
	out := make([]string, len(x.OpenPlanStatuses))
	for i, s := range x.OpenPlanStatuses {
		out[i] = s.String()
	}
	return out
}
