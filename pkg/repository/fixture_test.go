package repository_test

import (
	"testing"
	"time"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	"github.com/trident-energy/riskregister/pkg/domain/types"
	"github.com/trident-energy/riskregister/pkg/repository/memory"
)

var defaultPage = interfaces.Page{Skip: 0, Limit: 100}

func ptr[T any](v T) *T { return &v }

func date(s string) *types.Date {
	d, err := types.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

// relDate keeps due-date fixtures valid regardless of when the tests run.
func relDate(days int) *types.Date {
	d := types.DateOf(time.Now().AddDate(0, 0, days))
	return &d
}

func newTestRepository(t *testing.T) interfaces.Repository {
	t.Helper()
	repo := memory.New(nil)
	repo.Load(testDataset())
	return repo
}

// testDataset is a small but fully linked snapshot of the schema. The
// deliberate irregularities: user 5 has an unresolvable role, risk 5 has no
// residual score or classification, action plan 5 points at a missing risk,
// and comment 2 is internal.
func testDataset() memory.Dataset {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	return memory.Dataset{
		Roles: []memory.RoleRow{
			{ID: 1, Name: "Administrator", Description: ptr("Full access"), ViewScope: "all", CanEditAnyRisk: true, CanDeleteRisks: true, HasAdminPrivileges: true},
			{ID: 2, Name: "Risk Manager", ViewScope: "country", CanEditAnyRisk: true},
			{ID: 3, Name: "Viewer", ViewScope: "country"},
		},
		Countries: []memory.CountryRow{
			{ID: 1, Code: "GQ", Name: "Equatorial Guinea"},
			{ID: 2, Code: "BR", Name: "Brazil"},
			{ID: 3, Code: "GB", Name: "United Kingdom"},
		},
		Users: []memory.UserRow{
			{ID: 1, FullName: "Alice Adams", Email: "alice.adams@trident.example", RoleID: 1, IsAdmin: true, IsActive: true, LastLogin: ptr(now), CreatedAt: ptr(now)},
			{ID: 2, FullName: "Bruno Costa", Email: "bruno.costa@trident.example", RoleID: 2, CountryID: ptr(int64(2)), IsActive: true, CreatedAt: ptr(now)},
			{ID: 3, FullName: "Carla Mba", Email: "carla.mba@trident.example", RoleID: 2, CountryID: ptr(int64(1)), IsActive: false, CreatedAt: ptr(now)},
			{ID: 4, FullName: "Derek Owens", Email: "derek.owens@trident.example", RoleID: 3, CountryID: ptr(int64(3)), IsActive: true, CreatedAt: ptr(now)},
			{ID: 5, FullName: "Elena Souza", Email: "elena.souza@trident.example", RoleID: 9, CountryID: ptr(int64(2)), IsActive: true, CreatedAt: ptr(now)},
		},
		Registers:      []memory.RefRow{{ID: 1, Name: "Corporate"}},
		Functions:      []memory.RefRow{{ID: 1, Name: "Operations"}, {ID: 2, Name: "Finance"}},
		Categories:     []memory.RefRow{{ID: 1, Name: "Operational"}, {ID: 2, Name: "Financial"}},
		PrincipalRisks: []memory.RefRow{{ID: 1, Name: "Asset Integrity"}},
		Statuses:       []memory.RefRow{{ID: 1, Name: "Open"}, {ID: 2, Name: "Under Review"}, {ID: 4, Name: "Closed"}},
		Trends:         []memory.RefRow{{ID: 1, Name: "Stable"}, {ID: 2, Name: "Increasing"}},
		ControlRatings: []memory.RefRow{{ID: 1, Name: "Effective"}, {ID: 2, Name: "Partially Effective"}},
		Risks: []memory.RiskRow{
			{
				ID: 1, RiskCode: ptr("GQ-001"), Title: "Gas compressor integrity",
				Description: ptr("Aging compressor seals on the Punta Europa plant"),
				CountryID:   1, RiskRegisterID: 1, FunctionID: 1, CategoryID: 1,
				PrincipalRiskID: ptr(int64(1)), OwnerID: 2, StatusID: 1, TrendID: ptr(int64(2)),
				InherentImpact: 5, InherentLikelihood: 5, InherentScore: ptr(25),
				InherentClassification: ptr(types.ClassificationSignificant),
				ControlsRatingID:       ptr(int64(1)),
				ResidualImpact:         4, ResidualLikelihood: 4, ResidualScore: ptr(16),
				ResidualClassification: ptr(types.ClassificationSignificant),
				LastReviewDate:         date("2026-06-30"), LastReviewerID: ptr(int64(1)),
				CreatedAt: ptr(now), UpdatedAt: ptr(now),
			},
			{
				ID: 2, RiskCode: ptr("BR-001"), Title: "FX exposure on long-term contracts",
				CountryID: 2, RiskRegisterID: 1, FunctionID: 2, CategoryID: 2,
				OwnerID: 2, StatusID: 1,
				InherentImpact: 4, InherentLikelihood: 3, InherentScore: ptr(12),
				InherentClassification: ptr(types.ClassificationModerate),
				ResidualImpact:         3, ResidualLikelihood: 3, ResidualScore: ptr(9),
				ResidualClassification: ptr(types.ClassificationModerate),
				CreatedAt:              ptr(now), UpdatedAt: ptr(now),
			},
			{
				ID: 3, RiskCode: ptr("BR-002"), Title: "Vendor onboarding delays",
				CountryID: 2, RiskRegisterID: 1, FunctionID: 1, CategoryID: 1,
				OwnerID: 4, StatusID: 2,
				InherentImpact: 3, InherentLikelihood: 3, InherentScore: ptr(9),
				InherentClassification: ptr(types.ClassificationModerate),
				ResidualImpact:         2, ResidualLikelihood: 2, ResidualScore: ptr(4),
				ResidualClassification: ptr(types.ClassificationLow),
				CreatedAt:              ptr(now), UpdatedAt: ptr(now),
			},
			{
				ID: 4, RiskCode: ptr("GB-001"), Title: "Legacy SCADA patching backlog",
				CountryID: 3, RiskRegisterID: 1, FunctionID: 1, CategoryID: 1,
				OwnerID: 4, StatusID: 4, TrendID: ptr(int64(1)),
				InherentImpact: 4, InherentLikelihood: 4, InherentScore: ptr(16),
				InherentClassification: ptr(types.ClassificationSignificant),
				ResidualImpact:         4, ResidualLikelihood: 3, ResidualScore: ptr(12),
				ResidualClassification: ptr(types.ClassificationSignificant),
				CreatedAt:              ptr(now), UpdatedAt: ptr(now),
			},
			{
				ID: 5, RiskCode: ptr("GQ-002"), Title: "Unassessed pipeline corrosion",
				CountryID: 1, RiskRegisterID: 1, FunctionID: 1, CategoryID: 1,
				OwnerID: 2, StatusID: 1,
				InherentImpact: 4, InherentLikelihood: 4,
				ResidualImpact: 4, ResidualLikelihood: 4,
				CreatedAt:      ptr(now), UpdatedAt: ptr(now),
			},
		},
		Controls: []memory.ControlRow{
			{ID: 1, RiskID: 1, Title: "Quarterly integrity inspection", Description: ptr("Third-party inspection of compressor seals"), ControlType: "Preventive", EffectivenessScore: ptr(4), IsActive: true},
			{ID: 2, RiskID: 1, Title: "Pressure relief alarms", ControlType: "Detective", EffectivenessScore: ptr(3), IsActive: true},
			{ID: 3, RiskID: 2, Title: "Hedging policy", ControlType: "Preventive", IsActive: true},
		},
		ActionPlans: []memory.ActionPlanRow{
			{ID: 1, RiskID: 1, Title: "Replace compressor seals", Description: ptr("Order and fit replacement seals"), ResponsibleID: 2, DueDate: relDate(30), Status: "Open", Priority: "High"},
			{ID: 2, RiskID: 1, Title: "Update inspection procedure", ResponsibleID: 4, Status: "In Progress", Priority: "Medium"},
			{ID: 3, RiskID: 2, Title: "Renegotiate payment currency", ResponsibleID: 2, DueDate: relDate(-30), Status: "Open", Priority: "High"},
			{ID: 4, RiskID: 3, Title: "Automate vendor checks", ResponsibleID: 4, DueDate: relDate(-10), Status: "Completed", Priority: "Low", CompletionDate: relDate(-5)},
			{ID: 5, RiskID: 99, Title: "Orphaned remediation task", ResponsibleID: 2, Status: "Open", Priority: "Low"},
		},
		Comments: []memory.CommentRow{
			{ID: 1, RiskID: 1, UserID: 2, CommentText: "Inspection scheduled for Q3.", CreatedAt: ptr(now.AddDate(0, 0, -19))},
			{ID: 2, RiskID: 1, UserID: 4, CommentText: "Internal note on budget.", IsInternal: true, CreatedAt: ptr(now.AddDate(0, 0, -10))},
			{ID: 3, RiskID: 1, UserID: 1, CommentText: "Approved the replacement plan.", CreatedAt: ptr(now.AddDate(0, 0, -5))},
		},
	}
}
