package interfaces

import (
	"context"

	"github.com/trident-energy/riskregister/pkg/domain/types"
)

// StatsRepository serves the dashboard aggregates. Each method is an
// independent read; there is no snapshot across them.
type StatsRepository interface {
	// OpenRiskCount counts risks that are not in the closed status.
	OpenRiskCount(ctx context.Context) (int64, error)

	// RiskCountByClassification groups open risks by residual
	// classification. Labels with no rows are absent from the map.
	RiskCountByClassification(ctx context.Context) (map[types.Classification]int64, error)

	// AverageResidualScore averages the residual score of open risks,
	// rounded to one decimal. Nil when there are no open risks.
	AverageResidualScore(ctx context.Context) (*float64, error)

	// OpenActionPlanCount counts action plans in an open status.
	OpenActionPlanCount(ctx context.Context) (int64, error)

	// OverdueActionPlanCount counts open action plans whose due date has
	// passed.
	OverdueActionPlanCount(ctx context.Context) (int64, error)

	// ActiveUserCount counts active users.
	ActiveUserCount(ctx context.Context) (int64, error)
}
