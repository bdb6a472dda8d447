package interfaces

import "github.com/trident-energy/riskregister/pkg/domain/types"

// Page bounds a listing query. The HTTP layer applies the 0/100 defaults
// before the repository sees it.
type Page struct {
	Skip  int
	Limit int
}

// UserFilter narrows a user listing. Nil fields impose no constraint;
// set fields combine with AND.
type UserFilter struct {
	RoleID    *int64
	CountryID *int64
	IsActive  *bool
}

// RiskFilter narrows a risk listing.
type RiskFilter struct {
	CountryID      *int64
	StatusID       *int64
	Classification *types.Classification
}

// ActionPlanFilter narrows an action plan listing.
type ActionPlanFilter struct {
	Status *string
}
