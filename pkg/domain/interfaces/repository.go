package interfaces

import "context"

// Repository aggregates the per-resource query repositories over the risk
// register schema. All operations are reads; the write path lives in a
// separate system.
type Repository interface {
	User() UserRepository
	Role() RoleRepository
	Country() CountryRepository
	Risk() RiskRepository
	ActionPlan() ActionPlanRepository
	Stats() StatsRepository

	// Ping verifies that the backing store is reachable.
	Ping(ctx context.Context) error
	Close() error
}
