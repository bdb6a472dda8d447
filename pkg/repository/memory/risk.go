package memory

import (
	"context"
	"math"
	"sort"

	"github.com/m-mizutani/goerr/v2"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	"github.com/trident-energy/riskregister/pkg/domain/model"
	domainConfig "github.com/trident-energy/riskregister/pkg/domain/model/config"
	"github.com/trident-energy/riskregister/pkg/domain/types"
)

type riskRepository struct {
	store *store
	tax   *domainConfig.Taxonomy
}

func (r *riskRepository) record(row *RiskRow) *model.Risk {
	countryID := row.CountryID
	risk := &model.Risk{
		ID:                     row.ID,
		RiskCode:               row.RiskCode,
		Title:                  row.Title,
		Description:            row.Description,
		CountryID:              row.CountryID,
		CountryName:            nil,
		CountryCode:            nil,
		RiskRegister:           refName(r.store.data.Registers, row.RiskRegisterID),
		FunctionArea:           refName(r.store.data.Functions, row.FunctionID),
		Category:               refName(r.store.data.Categories, row.CategoryID),
		OwnerID:                row.OwnerID,
		OwnerName:              r.store.userName(row.OwnerID),
		Status:                 refName(r.store.data.Statuses, row.StatusID),
		Trend:                  refNameOpt(r.store.data.Trends, row.TrendID),
		InherentImpact:         row.InherentImpact,
		InherentLikelihood:     row.InherentLikelihood,
		InherentScore:          row.InherentScore,
		InherentClassification: row.InherentClassification,
		ResidualImpact:         row.ResidualImpact,
		ResidualLikelihood:     row.ResidualLikelihood,
		ResidualScore:          row.ResidualScore,
		ResidualClassification: row.ResidualClassification,
		LastReviewDate:         row.LastReviewDate,
		CreatedAt:              row.CreatedAt,
	}
	if country := r.store.countryByID(&countryID); country != nil {
		name, code := country.Name, country.Code
		risk.CountryName = &name
		risk.CountryCode = &code
	}
	return risk
}

func (r *riskRepository) List(ctx context.Context, filter interfaces.RiskFilter, page interfaces.Page) ([]*model.Risk, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []*model.Risk{}
	for i := range r.store.data.Risks {
		row := &r.store.data.Risks[i]
		if filter.CountryID != nil && row.CountryID != *filter.CountryID {
			continue
		}
		if filter.StatusID != nil && row.StatusID != *filter.StatusID {
			continue
		}
		if filter.Classification != nil &&
			(row.ResidualClassification == nil || *row.ResidualClassification != *filter.Classification) {
			continue
		}
		out = append(out, r.record(row))
	}

	// Descending by residual score; rows without a score sort last, same as
	// NULLs in MySQL DESC ordering.
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := out[i].ResidualScore, out[j].ResidualScore
		switch {
		case si == nil:
			return false
		case sj == nil:
			return true
		default:
			return *si > *sj
		}
	})
	return paginate(out, page), nil
}

func (r *riskRepository) Get(ctx context.Context, id int64) (*model.RiskDetail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row := r.store.riskByID(id)
	if row == nil {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "risk not found", goerr.V("id", id))
	}

	countryID := row.CountryID
	detail := &model.RiskDetail{
		ID:                     row.ID,
		RiskCode:               row.RiskCode,
		Title:                  row.Title,
		Description:            row.Description,
		CountryID:              row.CountryID,
		RiskRegisterID:         row.RiskRegisterID,
		FunctionID:             row.FunctionID,
		CategoryID:             row.CategoryID,
		PrincipalRiskID:        row.PrincipalRiskID,
		OwnerID:                row.OwnerID,
		StatusID:               row.StatusID,
		TrendID:                row.TrendID,
		InherentImpact:         row.InherentImpact,
		InherentLikelihood:     row.InherentLikelihood,
		InherentScore:          row.InherentScore,
		InherentClassification: row.InherentClassification,
		ControlsRatingID:       row.ControlsRatingID,
		ResidualImpact:         row.ResidualImpact,
		ResidualLikelihood:     row.ResidualLikelihood,
		ResidualScore:          row.ResidualScore,
		ResidualClassification: row.ResidualClassification,
		LastReviewDate:         row.LastReviewDate,
		LastReviewerID:         row.LastReviewerID,
		CreatedAt:              row.CreatedAt,
		UpdatedAt:              row.UpdatedAt,
		RiskRegister:           refName(r.store.data.Registers, row.RiskRegisterID),
		FunctionArea:           refName(r.store.data.Functions, row.FunctionID),
		Category:               refName(r.store.data.Categories, row.CategoryID),
		PrincipalRisk:          refNameOpt(r.store.data.PrincipalRisks, row.PrincipalRiskID),
		OwnerName:              r.store.userName(row.OwnerID),
		Status:                 refName(r.store.data.Statuses, row.StatusID),
		Trend:                  refNameOpt(r.store.data.Trends, row.TrendID),
		ControlsRating:         refNameOpt(r.store.data.ControlRatings, row.ControlsRatingID),
	}
	if country := r.store.countryByID(&countryID); country != nil {
		name, code := country.Name, country.Code
		detail.CountryName = &name
		detail.CountryCode = &code
	}
	return detail, nil
}

func (r *riskRepository) Controls(ctx context.Context, riskID int64) ([]*model.Control, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []*model.Control{}
	for i := range r.store.data.Controls {
		row := &r.store.data.Controls[i]
		if row.RiskID != riskID {
			continue
		}
		out = append(out, &model.Control{
			ID:                 row.ID,
			Title:              row.Title,
			Description:        row.Description,
			ControlType:        row.ControlType,
			EffectivenessScore: row.EffectivenessScore,
		})
	}
	return out, nil
}

func (r *riskRepository) ActionPlans(ctx context.Context, riskID int64) ([]*model.RiskActionPlan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []*model.RiskActionPlan{}
	for i := range r.store.data.ActionPlans {
		row := &r.store.data.ActionPlans[i]
		if row.RiskID != riskID {
			continue
		}
		out = append(out, &model.RiskActionPlan{
			ID:              row.ID,
			Title:           row.Title,
			Description:     row.Description,
			DueDate:         row.DueDate,
			Status:          row.Status,
			Priority:        row.Priority,
			ResponsibleName: r.store.userName(row.ResponsibleID),
		})
	}
	return out, nil
}

func (r *riskRepository) Comments(ctx context.Context, riskID int64) ([]*model.Comment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []*model.Comment{}
	for i := range r.store.data.Comments {
		row := &r.store.data.Comments[i]
		if row.RiskID != riskID || row.IsInternal {
			continue
		}
		out = append(out, &model.Comment{
			ID:          row.ID,
			CommentText: row.CommentText,
			CreatedAt:   row.CreatedAt,
			UserName:    r.store.userName(row.UserID),
		})
	}

	// Newest first.
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := out[i].CreatedAt, out[j].CreatedAt
		switch {
		case ti == nil:
			return false
		case tj == nil:
			return true
		default:
			return ti.After(*tj)
		}
	})
	return out, nil
}

func (r *riskRepository) SummaryByCountry(ctx context.Context) ([]*model.CountrySummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	type bucket struct {
		summary  *model.CountrySummary
		scoreSum int
		scoreN   int
	}
	buckets := map[int64]*bucket{}

	for i := range r.store.data.Risks {
		row := &r.store.data.Risks[i]
		countryID := row.CountryID
		country := r.store.countryByID(&countryID)
		if country == nil {
			continue
		}
		b, ok := buckets[country.ID]
		if !ok {
			b = &bucket{summary: &model.CountrySummary{
				CountryCode: country.Code,
				CountryName: country.Name,
			}}
			buckets[country.ID] = b
		}
		b.summary.TotalRisks++
		if row.ResidualClassification != nil {
			switch *row.ResidualClassification {
			case types.ClassificationSignificant:
				b.summary.Significant++
			case types.ClassificationModerate:
				b.summary.Moderate++
			case types.ClassificationLow:
				b.summary.Low++
			}
		}
		if row.ResidualScore != nil {
			b.scoreSum += *row.ResidualScore
			b.scoreN++
		}
	}

	out := []*model.CountrySummary{}
	for _, b := range buckets {
		if b.scoreN > 0 {
			avg := math.Round(float64(b.scoreSum)/float64(b.scoreN)*10) / 10
			b.summary.AvgResidualScore = &avg
		}
		out = append(out, b.summary)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalRisks != out[j].TotalRisks {
			return out[i].TotalRisks > out[j].TotalRisks
		}
		return out[i].CountryCode < out[j].CountryCode
	})
	return out, nil
}

func (r *riskRepository) Heatmap(ctx context.Context) ([]*model.HeatmapCell, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	type pair struct{ impact, likelihood int }
	counts := map[pair]int64{}
	for i := range r.store.data.Risks {
		row := &r.store.data.Risks[i]
		if row.StatusID == r.tax.ClosedStatusID {
			continue
		}
		counts[pair{row.ResidualImpact, row.ResidualLikelihood}]++
	}

	out := []*model.HeatmapCell{}
	for p, n := range counts {
		out = append(out, &model.HeatmapCell{Impact: p.impact, Likelihood: p.likelihood, Count: n})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Impact != out[j].Impact {
			return out[i].Impact < out[j].Impact
		}
		return out[i].Likelihood < out[j].Likelihood
	})
	return out, nil
}
