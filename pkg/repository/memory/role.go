package memory

import (
	"context"
	"sort"

	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type roleRepository struct {
	store *store
}

func (r *roleRepository) List(ctx context.Context) ([]*model.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*model.Role, 0, len(r.store.data.Roles))
	for i := range r.store.data.Roles {
		row := &r.store.data.Roles[i]
		out = append(out, &model.Role{
			ID:                 row.ID,
			Name:               row.Name,
			Description:        row.Description,
			ViewScope:          row.ViewScope,
			CanEditAnyRisk:     row.CanEditAnyRisk,
			CanDeleteRisks:     row.CanDeleteRisks,
			HasAdminPrivileges: row.HasAdminPrivileges,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
