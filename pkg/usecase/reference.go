package usecase

import (
	"context"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	"github.com/trident-energy/riskregister/pkg/domain/model"
)

// ReferenceUseCase serves the small reference listings.
type ReferenceUseCase struct {
	repo interfaces.Repository
}

func (u *ReferenceUseCase) Roles(ctx context.Context) ([]*model.Role, error) {
	return u.repo.Role().List(ctx)
}

func (u *ReferenceUseCase) Countries(ctx context.Context) ([]*model.Country, error) {
	return u.repo.Country().List(ctx)
}
