package memory

import (
	"context"
	"sort"

	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type countryRepository struct {
	store *store
}

func (r *countryRepository) List(ctx context.Context) ([]*model.Country, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*model.Country, 0, len(r.store.data.Countries))
	for i := range r.store.data.Countries {
		row := &r.store.data.Countries[i]
		out = append(out, &model.Country{ID: row.ID, Code: row.Code, Name: row.Name})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
