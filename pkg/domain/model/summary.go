package model

import "github.com/trident-energy/riskregister/pkg/domain/types"

// RoleCount is one row of the grouped user count.
type RoleCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// UserCount is the /api/users/count response.
type UserCount struct {
	Total  int64        `json:"total"`
	ByRole []*RoleCount `json:"by_role"`
}

// CountrySummary is one row of the by-country risk aggregate. The average
// is null for a country with no scored risks.
type CountrySummary struct {
	CountryCode      string   `json:"country_code"`
	CountryName      string   `json:"country_name"`
	TotalRisks       int64    `json:"total_risks"`
	Significant      int64    `json:"significant"`
	Moderate         int64    `json:"moderate"`
	Low              int64    `json:"low"`
	AvgResidualScore *float64 `json:"avg_residual_score"`
}

// HeatmapCell is a grouped count for one (impact, likelihood) pair. Pairs
// with no matching risks do not appear.
type HeatmapCell struct {
	Impact     int   `json:"impact"`
	Likelihood int   `json:"likelihood"`
	Count      int64 `json:"count"`
}

// DashboardSummary is the composite of six independent aggregate reads.
// RisksByClassification omits labels with zero matching rows; it is a
// breakdown of what exists, not a pre-enumerated bucket set.
type DashboardSummary struct {
	TotalRisks            int64                          `json:"total_risks"`
	RisksByClassification map[types.Classification]int64 `json:"risks_by_classification"`
	AverageResidualScore  *float64                       `json:"average_residual_score"`
	OpenActionPlans       int64                          `json:"open_action_plans"`
	OverdueActionPlans    int64                          `json:"overdue_action_plans"`
	TotalActiveUsers      int64                          `json:"total_active_users"`
}
