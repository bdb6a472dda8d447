package mysql

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"
	"gorm.io/gorm"

	domainConfig "github.com/trident-energy/riskregister/pkg/domain/model/config"
	"github.com/trident-energy/riskregister/pkg/domain/types"
	"github.com/trident-energy/riskregister/pkg/utils/safe"
)

type statsRepository struct {
	db  *gorm.DB
	tax *domainConfig.Taxonomy
}

func (r *statsRepository) OpenRiskCount(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM risks WHERE status_id != ?", r.tax.ClosedStatusID).
		Scan(&total).Error
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count open risks")
	}
	return total, nil
}

func (r *statsRepository) RiskCountByClassification(ctx context.Context) (map[types.Classification]int64, error) {
	query := `
SELECT residual_classification, COUNT(*) AS count
FROM risks
WHERE status_id != ?
GROUP BY residual_classification
`
	rows, err := r.db.WithContext(ctx).Raw(query, r.tax.ClosedStatusID).Rows()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count risks by classification")
	}
	defer safe.Close(ctx, rows)

	out := map[types.Classification]int64{}
	for rows.Next() {
		var classification sql.NullString
		var count int64
		if err := rows.Scan(&classification, &count); err != nil {
			return nil, goerr.Wrap(err, "failed to scan classification count")
		}
		// Rows without a classification label are unlabeled data; they stay
		// out of the breakdown.
		if !classification.Valid {
			continue
		}
		out[types.Classification(classification.String)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate classification counts")
	}
	return out, nil
}

func (r *statsRepository) AverageResidualScore(ctx context.Context) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).
		Raw("SELECT ROUND(AVG(residual_score), 1) FROM risks WHERE status_id != ?", r.tax.ClosedStatusID).
		Scan(&avg).Error
	if err != nil {
		return nil, goerr.Wrap(err, "failed to average residual scores")
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

func (r *statsRepository) OpenActionPlanCount(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM action_plans WHERE status IN ?", r.tax.OpenPlanStatusStrings()).
		Scan(&total).Error
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count open action plans")
	}
	return total, nil
}

func (r *statsRepository) OverdueActionPlanCount(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM action_plans WHERE status IN ? AND due_date < CURDATE()", r.tax.OpenPlanStatusStrings()).
		Scan(&total).Error
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count overdue action plans")
	}
	return total, nil
}

func (r *statsRepository) ActiveUserCount(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM users WHERE is_active = ?", true).
		Scan(&total).Error
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count active users")
	}
	return total, nil
}
