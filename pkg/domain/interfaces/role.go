package interfaces

import (
	"context"

	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type RoleRepository interface {
	// List retrieves all roles ordered by ID.
	List(ctx context.Context) ([]*model.Role, error)
}
