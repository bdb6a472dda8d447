package model

import (
	"time"

	"github.com/trident-energy/riskregister/pkg/domain/types"
)

// Risk is the listing record for /api/risks. It resolves reference labels
// via LEFT JOINs and drops the raw foreign keys the listing does not expose.
type Risk struct {
	ID                     int64                 `json:"id"`
	RiskCode               *string               `json:"risk_code"`
	Title                  string                `json:"title"`
	Description            *string               `json:"description"`
	CountryID              int64                 `json:"country_id"`
	CountryName            *string               `json:"country_name"`
	CountryCode            *string               `json:"country_code"`
	RiskRegister           *string               `json:"risk_register"`
	FunctionArea           *string               `json:"function_area"`
	Category               *string               `json:"category"`
	OwnerID                int64                 `json:"owner_id"`
	OwnerName              *string               `json:"owner_name"`
	Status                 *string               `json:"status"`
	Trend                  *string               `json:"trend"`
	InherentImpact         int                   `json:"inherent_impact"`
	InherentLikelihood     int                   `json:"inherent_likelihood"`
	InherentScore          *int                  `json:"inherent_score"`
	InherentClassification *types.Classification `json:"inherent_classification"`
	ResidualImpact         int                   `json:"residual_impact"`
	ResidualLikelihood     int                   `json:"residual_likelihood"`
	ResidualScore          *int                  `json:"residual_score"`
	ResidualClassification *types.Classification `json:"residual_classification"`
	LastReviewDate         *types.Date           `json:"last_review_date"`
	CreatedAt              *time.Time            `json:"created_at"`
}

// RiskDetail is the single-risk record: every column of the risks table,
// all resolved labels, and the nested sequences filled in by the use case
// from three follow-up queries.
type RiskDetail struct {
	ID                     int64                 `json:"id"`
	RiskCode               *string               `json:"risk_code"`
	Title                  string                `json:"title"`
	Description            *string               `json:"description"`
	CountryID              int64                 `json:"country_id"`
	RiskRegisterID         int64                 `json:"risk_register_id"`
	FunctionID             int64                 `json:"function_id"`
	CategoryID             int64                 `json:"category_id"`
	PrincipalRiskID        *int64                `json:"principal_risk_id"`
	OwnerID                int64                 `json:"owner_id"`
	StatusID               int64                 `json:"status_id"`
	TrendID                *int64                `json:"trend_id"`
	InherentImpact         int                   `json:"inherent_impact"`
	InherentLikelihood     int                   `json:"inherent_likelihood"`
	InherentScore          *int                  `json:"inherent_score"`
	InherentClassification *types.Classification `json:"inherent_classification"`
	ControlsRatingID       *int64                `json:"controls_rating_id"`
	ResidualImpact         int                   `json:"residual_impact"`
	ResidualLikelihood     int                   `json:"residual_likelihood"`
	ResidualScore          *int                  `json:"residual_score"`
	ResidualClassification *types.Classification `json:"residual_classification"`
	LastReviewDate         *types.Date           `json:"last_review_date"`
	LastReviewerID         *int64                `json:"last_reviewer_id"`
	CreatedAt              *time.Time            `json:"created_at"`
	UpdatedAt              *time.Time            `json:"updated_at"`

	CountryName    *string `json:"country_name"`
	CountryCode    *string `json:"country_code"`
	RiskRegister   *string `json:"risk_register"`
	FunctionArea   *string `json:"function_area"`
	Category       *string `json:"category"`
	PrincipalRisk  *string `json:"principal_risk"`
	OwnerName      *string `json:"owner_name"`
	Status         *string `json:"status"`
	Trend          *string `json:"trend"`
	ControlsRating *string `json:"controls_rating"`

	Controls    []*Control        `json:"controls" gorm:"-"`
	ActionPlans []*RiskActionPlan `json:"action_plans" gorm:"-"`
	Comments    []*Comment        `json:"comments" gorm:"-"`
}
