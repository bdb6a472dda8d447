package memory

import (
	"context"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	domainConfig "github.com/trident-energy/riskregister/pkg/domain/model/config"
)

// Repository is an in-memory implementation of interfaces.Repository for
// development and testing. It applies the same filter, ordering and
// aggregation semantics as the MySQL backend, just in Go.
type Repository struct {
	store *store

	user       *userRepository
	role       *roleRepository
	country    *countryRepository
	risk       *riskRepository
	actionPlan *actionPlanRepository
	stats      *statsRepository
}

// New returns an empty repository. Seed it with Load. A nil taxonomy falls
// back to the production defaults.
func New(tax *domainConfig.Taxonomy) *Repository {
	if tax == nil {
		tax = domainConfig.DefaultTaxonomy()
	}

	s := &store{}
	return &Repository{
		store:      s,
		user:       &userRepository{store: s},
		role:       &roleRepository{store: s},
		country:    &countryRepository{store: s},
		risk:       &riskRepository{store: s, tax: tax},
		actionPlan: &actionPlanRepository{store: s},
		stats:      &statsRepository{store: s, tax: tax},
	}
}

// Load replaces the whole dataset.
func (r *Repository) Load(ds Dataset) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.data = ds
}

func (r *Repository) User() interfaces.UserRepository             { return r.user }
func (r *Repository) Role() interfaces.RoleRepository             { return r.role }
func (r *Repository) Country() interfaces.CountryRepository       { return r.country }
func (r *Repository) Risk() interfaces.RiskRepository             { return r.risk }
func (r *Repository) ActionPlan() interfaces.ActionPlanRepository { return r.actionPlan }
func (r *Repository) Stats() interfaces.StatsRepository           { return r.stats }

func (r *Repository) Ping(ctx context.Context) error { return nil }
func (r *Repository) Close() error                   { return nil }

// paginate slices a fully ordered result the way LIMIT/OFFSET does.
func paginate[T any](rows []T, page interfaces.Page) []T {
	if page.Skip >= len(rows) {
		return []T{}
	}
	rows = rows[page.Skip:]
	if page.Limit < len(rows) {
		rows = rows[:page.Limit]
	}
	return rows
}
