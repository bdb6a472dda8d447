package usecase

import (
	"context"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type UserUseCase struct {
	repo interfaces.Repository
}

func (u *UserUseCase) List(ctx context.Context, filter interfaces.UserFilter, page interfaces.Page) ([]*model.User, error) {
	return u.repo.User().List(ctx, filter, page)
}

func (u *UserUseCase) Get(ctx context.Context, id int64) (*model.User, error) {
	return u.repo.User().Get(ctx, id)
}

func (u *UserUseCase) Count(ctx context.Context) (*model.UserCount, error) {
	return u.repo.User().Count(ctx)
}
