package memory

import (
	"context"
	"sort"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type actionPlanRepository struct {
	store *store
}

func (r *actionPlanRepository) List(ctx context.Context, filter interfaces.ActionPlanFilter, page interfaces.Page) ([]*model.ActionPlan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []*model.ActionPlan{}
	for i := range r.store.data.ActionPlans {
		row := &r.store.data.ActionPlans[i]
		if filter.Status != nil && row.Status != *filter.Status {
			continue
		}

		// INNER JOIN semantics: plans whose risk or responsible user is
		// missing drop out of the listing.
		risk := r.store.riskByID(row.RiskID)
		responsible := r.store.userByID(row.ResponsibleID)
		if risk == nil || responsible == nil {
			continue
		}

		out = append(out, &model.ActionPlan{
			ID:              row.ID,
			Title:           row.Title,
			Description:     row.Description,
			DueDate:         row.DueDate,
			Status:          row.Status,
			Priority:        row.Priority,
			CompletionDate:  row.CompletionDate,
			RiskCode:        risk.RiskCode,
			RiskTitle:       risk.Title,
			ResponsibleName: responsible.FullName,
		})
	}

	// Due date ascending; plans without a due date sort first, same as
	// NULLs in MySQL ASC ordering.
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].DueDate, out[j].DueDate
		switch {
		case di == nil:
			return dj != nil
		case dj == nil:
			return false
		default:
			return di.Before(*dj)
		}
	})
	return paginate(out, page), nil
}
