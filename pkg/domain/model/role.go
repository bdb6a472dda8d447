package model

// Role carries the role reference data, including the capability flags the
// schema declares. The flags are exposed as data only; nothing in this
// service enforces them.
type Role struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        *string `json:"description"`
	ViewScope          string  `json:"view_scope"`
	CanEditAnyRisk     bool    `json:"can_edit_any_risk"`
	CanDeleteRisks     bool    `json:"can_delete_risks"`
	HasAdminPrivileges bool    `json:"has_admin_privileges"`
}
