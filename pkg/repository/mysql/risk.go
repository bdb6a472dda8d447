package mysql

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"gorm.io/gorm"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	"github.com/trident-energy/riskregister/pkg/domain/model"
	domainConfig "github.com/trident-energy/riskregister/pkg/domain/model/config"
	"github.com/trident-energy/riskregister/pkg/domain/types"
)

type riskRepository struct {
	db  *gorm.DB
	tax *domainConfig.Taxonomy
}

const riskListSelect = `
SELECT
    r.id,
    r.risk_code,
    r.title,
    r.description,
    r.country_id,
    c.name AS country_name,
    c.code AS country_code,
    rr.name AS risk_register,
    rf.name AS function_area,
    rc.name AS category,
    r.owner_id,
    u.full_name AS owner_name,
    rs.name AS status,
    rt.name AS trend,
    r.inherent_impact,
    r.inherent_likelihood,
    r.inherent_score,
    r.inherent_classification,
    r.residual_impact,
    r.residual_likelihood,
    r.residual_score,
    r.residual_classification,
    r.last_review_date,
    r.created_at
FROM risks r
LEFT JOIN countries c ON r.country_id = c.id
LEFT JOIN risk_registers rr ON r.risk_register_id = rr.id
LEFT JOIN risk_functions rf ON r.function_id = rf.id
LEFT JOIN risk_categories rc ON r.category_id = rc.id
LEFT JOIN users u ON r.owner_id = u.id
LEFT JOIN risk_statuses rs ON r.status_id = rs.id
LEFT JOIN risk_trends rt ON r.trend_id = rt.id
`

const riskDetailSelect = `
SELECT
    r.id,
    r.risk_code,
    r.title,
    r.description,
    r.country_id,
    r.risk_register_id,
    r.function_id,
    r.category_id,
    r.principal_risk_id,
    r.owner_id,
    r.status_id,
    r.trend_id,
    r.inherent_impact,
    r.inherent_likelihood,
    r.inherent_score,
    r.inherent_classification,
    r.controls_rating_id,
    r.residual_impact,
    r.residual_likelihood,
    r.residual_score,
    r.residual_classification,
    r.last_review_date,
    r.last_reviewer_id,
    r.created_at,
    r.updated_at,
    c.name AS country_name,
    c.code AS country_code,
    rr.name AS risk_register,
    rf.name AS function_area,
    rc.name AS category,
    pr.name AS principal_risk,
    u.full_name AS owner_name,
    rs.name AS status,
    rt.name AS trend,
    cr.name AS controls_rating
FROM risks r
LEFT JOIN countries c ON r.country_id = c.id
LEFT JOIN risk_registers rr ON r.risk_register_id = rr.id
LEFT JOIN risk_functions rf ON r.function_id = rf.id
LEFT JOIN risk_categories rc ON r.category_id = rc.id
LEFT JOIN principal_risks pr ON r.principal_risk_id = pr.id
LEFT JOIN users u ON r.owner_id = u.id
LEFT JOIN risk_statuses rs ON r.status_id = rs.id
LEFT JOIN risk_trends rt ON r.trend_id = rt.id
LEFT JOIN control_ratings cr ON r.controls_rating_id = cr.id
`

func (r *riskRepository) List(ctx context.Context, filter interfaces.RiskFilter, page interfaces.Page) ([]*model.Risk, error) {
	var sb strings.Builder
	sb.WriteString(riskListSelect)
	sb.WriteString("WHERE 1=1")

	var args []any
	if filter.CountryID != nil {
		sb.WriteString(" AND r.country_id = ?")
		args = append(args, *filter.CountryID)
	}
	if filter.StatusID != nil {
		sb.WriteString(" AND r.status_id = ?")
		args = append(args, *filter.StatusID)
	}
	if filter.Classification != nil {
		sb.WriteString(" AND r.residual_classification = ?")
		args = append(args, filter.Classification.String())
	}
	sb.WriteString(" ORDER BY r.residual_score DESC LIMIT ? OFFSET ?")
	args = append(args, page.Limit, page.Skip)

	risks := []*model.Risk{}
	if err := r.db.WithContext(ctx).Raw(sb.String(), args...).Scan(&risks).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to list risks")
	}
	return risks, nil
}

func (r *riskRepository) Get(ctx context.Context, id int64) (*model.RiskDetail, error) {
	var risks []*model.RiskDetail
	if err := r.db.WithContext(ctx).Raw(riskDetailSelect+"WHERE r.id = ?", id).Scan(&risks).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to get risk", goerr.V("id", id))
	}
	if len(risks) == 0 {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "risk not found", goerr.V("id", id))
	}
	return risks[0], nil
}

func (r *riskRepository) Controls(ctx context.Context, riskID int64) ([]*model.Control, error) {
	query := `
SELECT id, title, description, control_type, effectiveness_score
FROM controls
WHERE risk_id = ?
`
	controls := []*model.Control{}
	if err := r.db.WithContext(ctx).Raw(query, riskID).Scan(&controls).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to list controls", goerr.V("risk_id", riskID))
	}
	return controls, nil
}

func (r *riskRepository) ActionPlans(ctx context.Context, riskID int64) ([]*model.RiskActionPlan, error) {
	query := `
SELECT ap.id, ap.title, ap.description, ap.due_date, ap.status, ap.priority,
       u.full_name AS responsible_name
FROM action_plans ap
LEFT JOIN users u ON ap.responsible_id = u.id
WHERE ap.risk_id = ?
`
	plans := []*model.RiskActionPlan{}
	if err := r.db.WithContext(ctx).Raw(query, riskID).Scan(&plans).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to list action plans", goerr.V("risk_id", riskID))
	}
	return plans, nil
}

func (r *riskRepository) Comments(ctx context.Context, riskID int64) ([]*model.Comment, error) {
	query := `
SELECT cm.id, cm.comment_text, cm.created_at, u.full_name AS user_name
FROM comments cm
LEFT JOIN users u ON cm.user_id = u.id
WHERE cm.risk_id = ? AND cm.is_internal = FALSE
ORDER BY cm.created_at DESC
`
	comments := []*model.Comment{}
	if err := r.db.WithContext(ctx).Raw(query, riskID).Scan(&comments).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to list comments", goerr.V("risk_id", riskID))
	}
	return comments, nil
}

func (r *riskRepository) SummaryByCountry(ctx context.Context) ([]*model.CountrySummary, error) {
	query := `
SELECT
    c.code AS country_code,
    c.name AS country_name,
    COUNT(r.id) AS total_risks,
    SUM(CASE WHEN r.residual_classification = ? THEN 1 ELSE 0 END) AS significant,
    SUM(CASE WHEN r.residual_classification = ? THEN 1 ELSE 0 END) AS moderate,
    SUM(CASE WHEN r.residual_classification = ? THEN 1 ELSE 0 END) AS low,
    ROUND(AVG(r.residual_score), 1) AS avg_residual_score
FROM risks r
JOIN countries c ON r.country_id = c.id
GROUP BY c.id, c.code, c.name
ORDER BY total_risks DESC, c.code
`
	summary := []*model.CountrySummary{}
	err := r.db.WithContext(ctx).Raw(query,
		types.ClassificationSignificant.String(),
		types.ClassificationModerate.String(),
		types.ClassificationLow.String(),
	).Scan(&summary).Error
	if err != nil {
		return nil, goerr.Wrap(err, "failed to summarize risks by country")
	}
	return summary, nil
}

func (r *riskRepository) Heatmap(ctx context.Context) ([]*model.HeatmapCell, error) {
	query := `
SELECT
    residual_impact AS impact,
    residual_likelihood AS likelihood,
    COUNT(*) AS count
FROM risks
WHERE status_id != ?
GROUP BY residual_impact, residual_likelihood
`
	cells := []*model.HeatmapCell{}
	if err := r.db.WithContext(ctx).Raw(query, r.tax.ClosedStatusID).Scan(&cells).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to build risk heatmap")
	}
	return cells, nil
}
