package interfaces

import (
	"context"

	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type RiskRepository interface {
	// List retrieves risks matching the filter, ordered by residual score
	// descending.
	List(ctx context.Context, filter RiskFilter, page Page) ([]*model.Risk, error)

	// Get retrieves a single risk with all columns and resolved labels, or
	// ErrNotFound. The nested sequences are left empty; the use case fills
	// them from the three queries below.
	Get(ctx context.Context, id int64) (*model.RiskDetail, error)

	// Controls retrieves the controls of a risk.
	Controls(ctx context.Context, riskID int64) ([]*model.Control, error)

	// ActionPlans retrieves the action plans of a risk.
	ActionPlans(ctx context.Context, riskID int64) ([]*model.RiskActionPlan, error)

	// Comments retrieves the non-internal comments of a risk, newest first.
	Comments(ctx context.Context, riskID int64) ([]*model.Comment, error)

	// SummaryByCountry aggregates risk counts and classification buckets per
	// country, ordered by total descending.
	SummaryByCountry(ctx context.Context) ([]*model.CountrySummary, error)

	// Heatmap counts risks per (residual impact, residual likelihood) pair,
	// excluding closed risks.
	Heatmap(ctx context.Context) ([]*model.HeatmapCell, error)
}
