package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	"github.com/trident-energy/riskregister/pkg/domain/model"
)

type userRepository struct {
	store *store
}

func (r *userRepository) record(row *UserRow) *model.User {
	user := &model.User{
		ID:        row.ID,
		FullName:  row.FullName,
		Email:     row.Email,
		RoleID:    row.RoleID,
		CountryID: row.CountryID,
		IsAdmin:   row.IsAdmin,
		IsActive:  row.IsActive,
		LastLogin: row.LastLogin,
		CreatedAt: row.CreatedAt,
	}
	if role := r.store.roleByID(row.RoleID); role != nil {
		name, scope := role.Name, role.ViewScope
		user.RoleName = &name
		user.ViewScope = &scope
	}
	if country := r.store.countryByID(row.CountryID); country != nil {
		name, code := country.Name, country.Code
		user.CountryName = &name
		user.CountryCode = &code
	}
	return user
}

func (r *userRepository) List(ctx context.Context, filter interfaces.UserFilter, page interfaces.Page) ([]*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []*model.User{}
	for i := range r.store.data.Users {
		row := &r.store.data.Users[i]
		if filter.RoleID != nil && row.RoleID != *filter.RoleID {
			continue
		}
		if filter.CountryID != nil && (row.CountryID == nil || *row.CountryID != *filter.CountryID) {
			continue
		}
		if filter.IsActive != nil && row.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, r.record(row))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FullName < out[j].FullName
	})
	return paginate(out, page), nil
}

func (r *userRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row := r.store.userByID(id)
	if row == nil {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "user not found", goerr.V("id", id))
	}
	return r.record(row), nil
}

func (r *userRepository) Count(ctx context.Context) (*model.UserCount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	counts := map[int64]int64{}
	for i := range r.store.data.Users {
		counts[r.store.data.Users[i].RoleID]++
	}

	// Grouping follows the INNER JOIN: users with an unresolvable role are
	// excluded from the breakdown but still counted in the total.
	byRole := []*model.RoleCount{}
	for i := range r.store.data.Roles {
		role := &r.store.data.Roles[i]
		if n, ok := counts[role.ID]; ok {
			byRole = append(byRole, &model.RoleCount{Name: role.Name, Count: n})
		}
	}

	return &model.UserCount{
		Total:  int64(len(r.store.data.Users)),
		ByRole: byRole,
	}, nil
}
