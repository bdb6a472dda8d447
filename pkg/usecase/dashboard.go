package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type DashboardUseCase struct {
	repo interfaces.Repository
}

// Summary runs the six dashboard aggregates. They are independent reads
// with no snapshot across them, so they run concurrently; any failure
// fails the whole request.
func (u *DashboardUseCase) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	var out model.DashboardSummary
	stats := u.repo.Stats()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		n, err := stats.OpenRiskCount(ctx)
		out.TotalRisks = n
		return err
	})
	eg.Go(func() error {
		m, err := stats.RiskCountByClassification(ctx)
		out.RisksByClassification = m
		return err
	})
	eg.Go(func() error {
		avg, err := stats.AverageResidualScore(ctx)
		out.AverageResidualScore = avg
		return err
	})
	eg.Go(func() error {
		n, err := stats.OpenActionPlanCount(ctx)
		out.OpenActionPlans = n
		return err
	})
	eg.Go(func() error {
		n, err := stats.OverdueActionPlanCount(ctx)
		out.OverdueActionPlans = n
		return err
	})
	eg.Go(func() error {
		n, err := stats.ActiveUserCount(ctx)
		out.TotalActiveUsers = n
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to build dashboard summary")
	}
	return &out, nil
}
