package interfaces

import (
	"context"

	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type CountryRepository interface {
	// List retrieves all countries ordered by name.
	List(ctx context.Context) ([]*model.Country, error)
}
