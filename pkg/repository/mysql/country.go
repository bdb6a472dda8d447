package mysql

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"gorm.io/gorm"

	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type countryRepository struct {
	db *gorm.DB
}

func (r *countryRepository) List(ctx context.Context) ([]*model.Country, error) {
	countries := []*model.Country{}
	if err := r.db.WithContext(ctx).Raw("SELECT id, code, name FROM countries ORDER BY name").Scan(&countries).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to list countries")
	}
	return countries, nil
}
