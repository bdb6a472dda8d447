package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type RiskUseCase struct {
	repo interfaces.Repository
}

func (u *RiskUseCase) List(ctx context.Context, filter interfaces.RiskFilter, page interfaces.Page) ([]*model.Risk, error) {
	return u.repo.Risk().List(ctx, filter, page)
}

// Get assembles the full risk detail from four reads: the risk row plus its
// controls, action plans and non-internal comments. The reads are not
// transactional; each reflects its own read time.
func (u *RiskUseCase) Get(ctx context.Context, id int64) (*model.RiskDetail, error) {
	detail, err := u.repo.Risk().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	controls, err := u.repo.Risk().Controls(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load controls for risk", goerr.V("id", id))
	}
	plans, err := u.repo.Risk().ActionPlans(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load action plans for risk", goerr.V("id", id))
	}
	comments, err := u.repo.Risk().Comments(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load comments for risk", goerr.V("id", id))
	}

	detail.Controls = controls
	detail.ActionPlans = plans
	detail.Comments = comments
	return detail, nil
}

func (u *RiskUseCase) SummaryByCountry(ctx context.Context) ([]*model.CountrySummary, error) {
	return u.repo.Risk().SummaryByCountry(ctx)
}

func (u *RiskUseCase) Heatmap(ctx context.Context) ([]*model.HeatmapCell, error) {
	return u.repo.Risk().Heatmap(ctx)
}
