package model

import "time"

// User is the outward-facing user record. Display fields resolved from the
// roles and countries tables are pointers: a LEFT JOIN miss keeps the row
// and yields null fields instead of excluding it.
type User struct {
	ID          int64      `json:"id"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	RoleID      int64      `json:"role_id"`
	RoleName    *string    `json:"role_name"`
	ViewScope   *string    `json:"view_scope"`
	CountryID   *int64     `json:"country_id"`
	CountryName *string    `json:"country_name"`
	CountryCode *string    `json:"country_code"`
	IsAdmin     bool       `json:"is_admin"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login"`
	CreatedAt   *time.Time `json:"created_at"`
}
