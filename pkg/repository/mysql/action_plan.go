package mysql

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"gorm.io/gorm"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type actionPlanRepository struct {
	db *gorm.DB
}

const actionPlanSelect = `
SELECT
    ap.id,
    ap.title,
    ap.description,
    ap.due_date,
    ap.status,
    ap.priority,
    ap.completion_date,
    r.risk_code,
    r.title AS risk_title,
    u.full_name AS responsible_name
FROM action_plans ap
JOIN risks r ON ap.risk_id = r.id
JOIN users u ON ap.responsible_id = u.id
`

func (r *actionPlanRepository) List(ctx context.Context, filter interfaces.ActionPlanFilter, page interfaces.Page) ([]*model.ActionPlan, error) {
	var sb strings.Builder
	sb.WriteString(actionPlanSelect)
	sb.WriteString("WHERE 1=1")

	var args []any
	if filter.Status != nil {
		sb.WriteString(" AND ap.status = ?")
		args = append(args, *filter.Status)
	}
	sb.WriteString(" ORDER BY ap.due_date LIMIT ? OFFSET ?")
	args = append(args, page.Limit, page.Skip)

	plans := []*model.ActionPlan{}
	if err := r.db.WithContext(ctx).Raw(sb.String(), args...).Scan(&plans).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to list action plans")
	}
	return plans, nil
}
