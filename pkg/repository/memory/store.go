package memory

import (
	"sync"
	"time"

	"github.com/trident-energy/riskregister/pkg/domain/types"
)

// Storage-shaped rows. The memory backend keeps the raw table shape and
// resolves display fields at query time, mirroring what the SQL joins do.

type RoleRow struct {
	ID                 int64
	Name               string
	Description        *string
	ViewScope          string
	CanEditAnyRisk     bool
	CanDeleteRisks     bool
	HasAdminPrivileges bool
}

type CountryRow struct {
	ID   int64
	Code string
	Name string
}

type UserRow struct {
	ID        int64
	FullName  string
	Email     string
	RoleID    int64
	CountryID *int64
	IsAdmin   bool
	IsActive  bool
	LastLogin *time.Time
	CreatedAt *time.Time
}

// RefRow is a generic reference table row (registers, functions, categories,
// principal risks, statuses, trends, control ratings).
type RefRow struct {
	ID   int64
	Name string
}

type RiskRow struct {
	ID                     int64
	RiskCode               *string
	Title                  string
	Description            *string
	CountryID              int64
	RiskRegisterID         int64
	FunctionID             int64
	CategoryID             int64
	PrincipalRiskID        *int64
	OwnerID                int64
	StatusID               int64
	TrendID                *int64
	InherentImpact         int
	InherentLikelihood     int
	InherentScore          *int
	InherentClassification *types.Classification
	ControlsRatingID       *int64
	ResidualImpact         int
	ResidualLikelihood     int
	ResidualScore          *int
	ResidualClassification *types.Classification
	LastReviewDate         *types.Date
	LastReviewerID         *int64
	CreatedAt              *time.Time
	UpdatedAt              *time.Time
}

type ControlRow struct {
	ID                 int64
	RiskID             int64
	Title              string
	Description        *string
	ControlType        string
	EffectivenessScore *int
	IsActive           bool
}

type ActionPlanRow struct {
	ID             int64
	RiskID         int64
	Title          string
	Description    *string
	ResponsibleID  int64
	DueDate        *types.Date
	Status         string
	Priority       string
	CompletionDate *types.Date
}

type CommentRow struct {
	ID          int64
	RiskID      int64
	UserID      int64
	CommentText string
	IsInternal  bool
	CreatedAt   *time.Time
}

// Dataset is a full snapshot of the schema for seeding the backend.
type Dataset struct {
	Roles          []RoleRow
	Countries      []CountryRow
	Users          []UserRow
	Registers      []RefRow
	Functions      []RefRow
	Categories     []RefRow
	PrincipalRisks []RefRow
	Statuses       []RefRow
	Trends         []RefRow
	ControlRatings []RefRow
	Risks          []RiskRow
	Controls       []ControlRow
	ActionPlans    []ActionPlanRow
	Comments       []CommentRow
}

type store struct {
	mu   sync.RWMutex
	data Dataset
}

func (s *store) roleByID(id int64) *RoleRow {
	for i := range s.data.Roles {
		if s.data.Roles[i].ID == id {
			return &s.data.Roles[i]
		}
	}
	return nil
}

func (s *store) countryByID(id *int64) *CountryRow {
	if id == nil {
		return nil
	}
	for i := range s.data.Countries {
		if s.data.Countries[i].ID == *id {
			return &s.data.Countries[i]
		}
	}
	return nil
}

func (s *store) userByID(id int64) *UserRow {
	for i := range s.data.Users {
		if s.data.Users[i].ID == id {
			return &s.data.Users[i]
		}
	}
	return nil
}

func (s *store) riskByID(id int64) *RiskRow {
	for i := range s.data.Risks {
		if s.data.Risks[i].ID == id {
			return &s.data.Risks[i]
		}
	}
	return nil
}

func refName(rows []RefRow, id int64) *string {
	for i := range rows {
		if rows[i].ID == id {
			name := rows[i].Name
			return &name
		}
	}
	return nil
}

func refNameOpt(rows []RefRow, id *int64) *string {
	if id == nil {
		return nil
	}
	return refName(rows, *id)
}

func (s *store) userName(id int64) *string {
	if u := s.userByID(id); u != nil {
		name := u.FullName
		return &name
	}
	return nil
}
