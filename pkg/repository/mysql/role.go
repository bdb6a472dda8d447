package mysql

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"gorm.io/gorm"

	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type roleRepository struct {
	db *gorm.DB
}

func (r *roleRepository) List(ctx context.Context) ([]*model.Role, error) {
	query := `
SELECT id, name, description, view_scope,
       can_edit_any_risk, can_delete_risks, has_admin_privileges
FROM roles
ORDER BY id
`
	roles := []*model.Role{}
	if err := r.db.WithContext(ctx).Raw(query).Scan(&roles).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to list roles")
	}
	return roles, nil
}
