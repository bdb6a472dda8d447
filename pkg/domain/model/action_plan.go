package model

import "github.com/trident-energy/riskregister/pkg/domain/types"

// ActionPlan is the top-level listing record for /api/action-plans. The
// risk and responsible user are inner-joined, so their fields are required.
type ActionPlan struct {
	ID              int64       `json:"id"`
	Title           string      `json:"title"`
	Description     *string     `json:"description"`
	DueDate         *types.Date `json:"due_date"`
	Status          string      `json:"status"`
	Priority        string      `json:"priority"`
	CompletionDate  *types.Date `json:"completion_date"`
	RiskCode        *string     `json:"risk_code"`
	RiskTitle       string      `json:"risk_title"`
	ResponsibleName string      `json:"responsible_name"`
}

// RiskActionPlan is the trimmed variant nested in a risk detail. Here the
// responsible user is left-joined, so the name may be null.
type RiskActionPlan struct {
	ID              int64       `json:"id"`
	Title           string      `json:"title"`
	Description     *string     `json:"description"`
	DueDate         *types.Date `json:"due_date"`
	Status          string      `json:"status"`
	Priority        string      `json:"priority"`
	ResponsibleName *string     `json:"responsible_name"`
}
