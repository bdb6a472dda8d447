package mysql

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"gorm.io/gorm"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type userRepository struct {
	db *gorm.DB
}

const userSelect = `
SELECT
    u.id,
    u.full_name,
    u.email,
    u.role_id,
    r.name AS role_name,
    r.view_scope,
    u.country_id,
    c.name AS country_name,
    c.code AS country_code,
    u.is_admin,
    u.is_active,
    u.last_login,
    u.created_at
FROM users u
LEFT JOIN roles r ON u.role_id = r.id
LEFT JOIN countries c ON u.country_id = c.id
`

func (r *userRepository) List(ctx context.Context, filter interfaces.UserFilter, page interfaces.Page) ([]*model.User, error) {
	var sb strings.Builder
	sb.WriteString(userSelect)
	sb.WriteString("WHERE 1=1")

	var args []any
	if filter.RoleID != nil {
		sb.WriteString(" AND u.role_id = ?")
		args = append(args, *filter.RoleID)
	}
	if filter.CountryID != nil {
		sb.WriteString(" AND u.country_id = ?")
		args = append(args, *filter.CountryID)
	}
	if filter.IsActive != nil {
		sb.WriteString(" AND u.is_active = ?")
		args = append(args, *filter.IsActive)
	}
	sb.WriteString(" ORDER BY u.full_name LIMIT ? OFFSET ?")
	args = append(args, page.Limit, page.Skip)

	users := []*model.User{}
	if err := r.db.WithContext(ctx).Raw(sb.String(), args...).Scan(&users).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to list users")
	}
	return users, nil
}

func (r *userRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).Raw(userSelect+"WHERE u.id = ?", id).Scan(&users).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("id", id))
	}
	if len(users) == 0 {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "user not found", goerr.V("id", id))
	}
	return users[0], nil
}

func (r *userRepository) Count(ctx context.Context) (*model.UserCount, error) {
	var total int64
	if err := r.db.WithContext(ctx).Raw("SELECT COUNT(*) FROM users").Scan(&total).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to count users")
	}

	byRole := []*model.RoleCount{}
	query := `
SELECT r.name, COUNT(u.id) AS count
FROM users u
JOIN roles r ON u.role_id = r.id
GROUP BY r.id, r.name
`
	if err := r.db.WithContext(ctx).Raw(query).Scan(&byRole).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to count users by role")
	}

	return &model.UserCount{Total: total, ByRole: byRole}, nil
}
