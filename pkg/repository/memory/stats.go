package memory

import (
	"context"
	"math"
	"time"

	domainConfig "github.com/trident-energy/riskregister/pkg/domain/model/config"
	"github.com/trident-energy/riskregister/pkg/domain/types"
)

type statsRepository struct {
	store *store
	tax   *domainConfig.Taxonomy
}

func (r *statsRepository) OpenRiskCount(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var total int64
	for i := range r.store.data.Risks {
		if r.store.data.Risks[i].StatusID != r.tax.ClosedStatusID {
			total++
		}
	}
	return total, nil
}

func (r *statsRepository) RiskCountByClassification(ctx context.Context) (map[types.Classification]int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := map[types.Classification]int64{}
	for i := range r.store.data.Risks {
		row := &r.store.data.Risks[i]
		if row.StatusID == r.tax.ClosedStatusID || row.ResidualClassification == nil {
			continue
		}
		out[*row.ResidualClassification]++
	}
	return out, nil
}

func (r *statsRepository) AverageResidualScore(ctx context.Context) (*float64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var sum, n int
	for i := range r.store.data.Risks {
		row := &r.store.data.Risks[i]
		if row.StatusID == r.tax.ClosedStatusID || row.ResidualScore == nil {
			continue
		}
		sum += *row.ResidualScore
		n++
	}
	if n == 0 {
		return nil, nil
	}
	avg := math.Round(float64(sum)/float64(n)*10) / 10
	return &avg, nil
}

func (r *statsRepository) OpenActionPlanCount(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var total int64
	for i := range r.store.data.ActionPlans {
		if r.tax.IsOpenPlanStatus(r.store.data.ActionPlans[i].Status) {
			total++
		}
	}
	return total, nil
}

func (r *statsRepository) OverdueActionPlanCount(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	today := types.DateOf(time.Now())
	var total int64
	for i := range r.store.data.ActionPlans {
		row := &r.store.data.ActionPlans[i]
		if !r.tax.IsOpenPlanStatus(row.Status) {
			continue
		}
		if row.DueDate != nil && row.DueDate.Before(today) {
			total++
		}
	}
	return total, nil
}

func (r *statsRepository) ActiveUserCount(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var total int64
	for i := range r.store.data.Users {
		if r.store.data.Users[i].IsActive {
			total++
		}
	}
	return total, nil
}
