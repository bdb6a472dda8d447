package usecase

import (
	"context"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type ActionPlanUseCase struct {
	repo interfaces.Repository
}

func (u *ActionPlanUseCase) List(ctx context.Context, filter interfaces.ActionPlanFilter, page interfaces.Page) ([]*model.ActionPlan, error) {
	return u.repo.ActionPlan().List(ctx, filter, page)
}
