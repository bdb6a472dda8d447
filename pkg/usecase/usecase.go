package usecase

import (
	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
)

// UseCases bundles the per-resource use cases over a repository.
type UseCases struct {
	repo interfaces.Repository

	User       *UserUseCase
	Reference  *ReferenceUseCase
	Risk       *RiskUseCase
	ActionPlan *ActionPlanUseCase
	Dashboard  *DashboardUseCase
}

func New(repo interfaces.Repository) *UseCases {
	return &UseCases{
		repo:       repo,
		User:       &UserUseCase{repo: repo},
		Reference:  &ReferenceUseCase{repo: repo},
		Risk:       &RiskUseCase{repo: repo},
		ActionPlan: &ActionPlanUseCase{repo: repo},
		Dashboard:  &DashboardUseCase{repo: repo},
	}
}
