package interfaces

import (
	"context"

	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type ActionPlanRepository interface {
	// List retrieves action plans matching the filter, ordered by due date
	// ascending.
	List(ctx context.Context, filter ActionPlanFilter, page Page) ([]*model.ActionPlan, error)
}
