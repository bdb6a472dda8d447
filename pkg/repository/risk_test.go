package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	"github.com/trident-energy/riskregister/pkg/domain/types"
)

func TestRiskRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by residual score descending with unscored last", func(t *testing.T) {
		repo := newTestRepository(t)

		risks, err := repo.Risk().List(ctx, interfaces.RiskFilter{}, defaultPage)
		if err != nil {
			t.Fatalf("failed to list risks: %v", err)
		}
		wantIDs := []int64{1, 4, 2, 3, 5}
		if len(risks) != len(wantIDs) {
			t.Fatalf("expected %d risks, got %d", len(wantIDs), len(risks))
		}
		for i, want := range wantIDs {
			if risks[i].ID != want {
				t.Errorf("risk[%d]: expected ID=%d, got %d", i, want, risks[i].ID)
			}
		}
		if risks[4].ResidualScore != nil {
			t.Errorf("expected unscored risk last, got score %v", *risks[4].ResidualScore)
		}
	})

	t.Run("resolves reference labels", func(t *testing.T) {
		repo := newTestRepository(t)

		risks, err := repo.Risk().List(ctx, interfaces.RiskFilter{CountryID: ptr(int64(1))}, defaultPage)
		if err != nil {
			t.Fatalf("failed to list risks: %v", err)
		}
		if len(risks) != 2 {
			t.Fatalf("expected 2 risks, got %d", len(risks))
		}
		top := risks[0]
		if top.ID != 1 {
			t.Fatalf("expected risk 1 first, got %d", top.ID)
		}
		if top.RiskRegister == nil || *top.RiskRegister != "Corporate" {
			t.Errorf("expected risk_register=Corporate, got %v", top.RiskRegister)
		}
		if top.FunctionArea == nil || *top.FunctionArea != "Operations" {
			t.Errorf("expected function_area=Operations, got %v", top.FunctionArea)
		}
		if top.OwnerName == nil || *top.OwnerName != "Bruno Costa" {
			t.Errorf("expected owner_name=Bruno Costa, got %v", top.OwnerName)
		}
		if top.Status == nil || *top.Status != "Open" {
			t.Errorf("expected status=Open, got %v", top.Status)
		}
		if top.Trend == nil || *top.Trend != "Increasing" {
			t.Errorf("expected trend=Increasing, got %v", top.Trend)
		}
		if top.LastReviewDate == nil || top.LastReviewDate.String() != "2026-06-30" {
			t.Errorf("expected last_review_date=2026-06-30, got %v", top.LastReviewDate)
		}
	})

	t.Run("filters by status", func(t *testing.T) {
		repo := newTestRepository(t)

		risks, err := repo.Risk().List(ctx, interfaces.RiskFilter{StatusID: ptr(int64(1))}, defaultPage)
		if err != nil {
			t.Fatalf("failed to list risks: %v", err)
		}
		wantIDs := []int64{1, 2, 5}
		if len(risks) != len(wantIDs) {
			t.Fatalf("expected %d risks, got %d", len(wantIDs), len(risks))
		}
		for i, want := range wantIDs {
			if risks[i].ID != want {
				t.Errorf("risk[%d]: expected ID=%d, got %d", i, want, risks[i].ID)
			}
		}
	})

	t.Run("filters by classification excluding unclassified rows", func(t *testing.T) {
		repo := newTestRepository(t)

		cls := types.ClassificationSignificant
		risks, err := repo.Risk().List(ctx, interfaces.RiskFilter{Classification: &cls}, defaultPage)
		if err != nil {
			t.Fatalf("failed to list risks: %v", err)
		}
		if len(risks) != 2 {
			t.Fatalf("expected 2 risks, got %d", len(risks))
		}
		if risks[0].ID != 1 || risks[1].ID != 4 {
			t.Errorf("expected risks [1 4], got [%d %d]", risks[0].ID, risks[1].ID)
		}
	})

	t.Run("combines filters with AND", func(t *testing.T) {
		repo := newTestRepository(t)

		cls := types.ClassificationModerate
		risks, err := repo.Risk().List(ctx, interfaces.RiskFilter{
			CountryID:      ptr(int64(2)),
			Classification: &cls,
		}, defaultPage)
		if err != nil {
			t.Fatalf("failed to list risks: %v", err)
		}
		if len(risks) != 1 || risks[0].ID != 2 {
			t.Fatalf("expected only risk 2, got %d risks", len(risks))
		}
	})
}

func TestRiskRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all columns with resolved labels", func(t *testing.T) {
		repo := newTestRepository(t)

		detail, err := repo.Risk().Get(ctx, 1)
		if err != nil {
			t.Fatalf("failed to get risk: %v", err)
		}
		if detail.RiskCode == nil || *detail.RiskCode != "GQ-001" {
			t.Errorf("expected risk_code=GQ-001, got %v", detail.RiskCode)
		}
		if detail.StatusID != 1 {
			t.Errorf("expected status_id=1, got %d", detail.StatusID)
		}
		if detail.PrincipalRisk == nil || *detail.PrincipalRisk != "Asset Integrity" {
			t.Errorf("expected principal_risk=Asset Integrity, got %v", detail.PrincipalRisk)
		}
		if detail.ControlsRating == nil || *detail.ControlsRating != "Effective" {
			t.Errorf("expected controls_rating=Effective, got %v", detail.ControlsRating)
		}
		if detail.CountryCode == nil || *detail.CountryCode != "GQ" {
			t.Errorf("expected country_code=GQ, got %v", detail.CountryCode)
		}
		if detail.InherentScore == nil || *detail.InherentScore != 25 {
			t.Errorf("expected inherent_score=25, got %v", detail.InherentScore)
		}
	})

	t.Run("leaves optional labels null", func(t *testing.T) {
		repo := newTestRepository(t)

		detail, err := repo.Risk().Get(ctx, 2)
		if err != nil {
			t.Fatalf("failed to get risk: %v", err)
		}
		if detail.PrincipalRisk != nil {
			t.Errorf("expected null principal_risk, got %v", *detail.PrincipalRisk)
		}
		if detail.Trend != nil {
			t.Errorf("expected null trend, got %v", *detail.Trend)
		}
	})

	t.Run("returns ErrNotFound for missing risk", func(t *testing.T) {
		repo := newTestRepository(t)

		_, err := repo.Risk().Get(ctx, 99999)
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRiskRepository_Nested(t *testing.T) {
	ctx := context.Background()

	t.Run("Controls returns the controls of the risk", func(t *testing.T) {
		repo := newTestRepository(t)

		controls, err := repo.Risk().Controls(ctx, 1)
		if err != nil {
			t.Fatalf("failed to list controls: %v", err)
		}
		if len(controls) != 2 {
			t.Fatalf("expected 2 controls, got %d", len(controls))
		}
		if controls[0].Title != "Quarterly integrity inspection" {
			t.Errorf("unexpected first control: %s", controls[0].Title)
		}
		if controls[0].EffectivenessScore == nil || *controls[0].EffectivenessScore != 4 {
			t.Errorf("expected effectiveness_score=4, got %v", controls[0].EffectivenessScore)
		}
	})

	t.Run("ActionPlans resolves the responsible name", func(t *testing.T) {
		repo := newTestRepository(t)

		plans, err := repo.Risk().ActionPlans(ctx, 1)
		if err != nil {
			t.Fatalf("failed to list action plans: %v", err)
		}
		if len(plans) != 2 {
			t.Fatalf("expected 2 action plans, got %d", len(plans))
		}
		if plans[0].ResponsibleName == nil || *plans[0].ResponsibleName != "Bruno Costa" {
			t.Errorf("expected responsible_name=Bruno Costa, got %v", plans[0].ResponsibleName)
		}
	})

	t.Run("Comments excludes internal and orders newest first", func(t *testing.T) {
		repo := newTestRepository(t)

		comments, err := repo.Risk().Comments(ctx, 1)
		if err != nil {
			t.Fatalf("failed to list comments: %v", err)
		}
		if len(comments) != 2 {
			t.Fatalf("expected 2 comments, got %d", len(comments))
		}
		if comments[0].ID != 3 || comments[1].ID != 1 {
			t.Errorf("expected comments [3 1], got [%d %d]", comments[0].ID, comments[1].ID)
		}
		if comments[0].UserName == nil || *comments[0].UserName != "Alice Adams" {
			t.Errorf("expected user_name=Alice Adams, got %v", comments[0].UserName)
		}
	})

	t.Run("nested queries are empty for a risk without children", func(t *testing.T) {
		repo := newTestRepository(t)

		controls, err := repo.Risk().Controls(ctx, 5)
		if err != nil {
			t.Fatalf("failed to list controls: %v", err)
		}
		if len(controls) != 0 {
			t.Errorf("expected no controls, got %d", len(controls))
		}
	})
}

func TestRiskRepository_SummaryByCountry(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	summary, err := repo.Risk().SummaryByCountry(ctx)
	if err != nil {
		t.Fatalf("failed to summarize: %v", err)
	}
	if len(summary) != 3 {
		t.Fatalf("expected 3 countries, got %d", len(summary))
	}

	// Ordered by total descending, ties broken by code.
	if summary[0].CountryCode != "BR" || summary[1].CountryCode != "GQ" || summary[2].CountryCode != "GB" {
		t.Fatalf("unexpected order: %s %s %s", summary[0].CountryCode, summary[1].CountryCode, summary[2].CountryCode)
	}

	br := summary[0]
	if br.TotalRisks != 2 || br.Significant != 0 || br.Moderate != 1 || br.Low != 1 {
		t.Errorf("BR buckets: got total=%d sig=%d mod=%d low=%d", br.TotalRisks, br.Significant, br.Moderate, br.Low)
	}
	if br.AvgResidualScore == nil || *br.AvgResidualScore != 6.5 {
		t.Errorf("BR average: expected 6.5, got %v", br.AvgResidualScore)
	}

	// GQ has one scored and one unscored risk; the average covers scored
	// rows only.
	gq := summary[1]
	if gq.TotalRisks != 2 || gq.Significant != 1 {
		t.Errorf("GQ buckets: got total=%d sig=%d", gq.TotalRisks, gq.Significant)
	}
	if gq.AvgResidualScore == nil || *gq.AvgResidualScore != 16.0 {
		t.Errorf("GQ average: expected 16.0, got %v", gq.AvgResidualScore)
	}

	// Closed risks still count here; only the heatmap excludes them.
	gb := summary[2]
	if gb.TotalRisks != 1 || gb.Significant != 1 {
		t.Errorf("GB buckets: got total=%d sig=%d", gb.TotalRisks, gb.Significant)
	}
}

func TestRiskRepository_Heatmap(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	cells, err := repo.Risk().Heatmap(ctx)
	if err != nil {
		t.Fatalf("failed to build heatmap: %v", err)
	}
	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(cells))
	}

	// The closed risk (4,3) does not appear; (4,4) combines the scored and
	// the unscored open risks.
	var total int64
	for _, c := range cells {
		total += c.Count
	}
	if total != 4 {
		t.Errorf("expected 4 open risks in heatmap, got %d", total)
	}
	last := cells[len(cells)-1]
	if last.Impact != 4 || last.Likelihood != 4 || last.Count != 2 {
		t.Errorf("expected cell (4,4)=2, got (%d,%d)=%d", last.Impact, last.Likelihood, last.Count)
	}
	for _, c := range cells {
		if c.Impact == 4 && c.Likelihood == 3 {
			t.Errorf("closed risk leaked into heatmap: (%d,%d)", c.Impact, c.Likelihood)
		}
	}
}
