package interfaces

import (
	"context"

	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type UserRepository interface {
	// List retrieves users matching the filter, ordered by full name.
	List(ctx context.Context, filter UserFilter, page Page) ([]*model.User, error)

	// Get retrieves a user by ID, or ErrNotFound.
	Get(ctx context.Context, id int64) (*model.User, error)

	// Count returns the total user count and the per-role breakdown.
	Count(ctx context.Context) (*model.UserCount, error)
}
