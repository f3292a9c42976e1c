package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"

	"lingxi/domain"
)

// analyzePreferences folds the sample history into category preferences and
// a preferred risk level. Samples referencing products no longer in the
// catalog are skipped; re-ranking never scores off-catalog products.
func (s *RecommendService) analyzePreferences(ctx context.Context, samples []domain.FeedbackSample) (domain.PreferenceSummary, error) {
	summary := domain.PreferenceSummary{
		PreferredCategories: []domain.ProductCategory{},
		AvoidedCategories:   []domain.ProductCategory{},
	}
	if len(samples) == 0 {
		return summary, nil
	}

	preferred := make(map[domain.ProductCategory]bool)
	avoided := make(map[domain.ProductCategory]bool)
	riskSum, riskCount := 0, 0

	for _, sample := range samples {
		product, err := s.catalog.FindByID(ctx, sample.ProductID)
		if err != nil {
			continue
		}

		if sample.Label == 1 {
			if !preferred[product.Category] {
				preferred[product.Category] = true
				summary.PreferredCategories = append(summary.PreferredCategories, product.Category)
			}
			riskSum += product.RiskLevel
			riskCount++
		} else {
			if !avoided[product.Category] {
				avoided[product.Category] = true
				summary.AvoidedCategories = append(summary.AvoidedCategories, product.Category)
			}
		}
	}

	if riskCount > 0 {
		level := int(math.Round(float64(riskSum) / float64(riskCount)))
		summary.PreferredRiskLevel = &level
	}

	return summary, nil
}

// rerank recomputes base recommendations and applies the feedback-derived
// weight adjustments. A category that is both preferred and avoided counts
// as preferred.
func (s *RecommendService) rerank(ctx context.Context, customer domain.CustomerProfile, risk domain.RiskProfile, samples []domain.FeedbackSample) ([]domain.Recommendation, domain.PreferenceSummary, error) {
	prefs, err := s.analyzePreferences(ctx, samples)
	if err != nil {
		return nil, domain.PreferenceSummary{}, err
	}

	recs, err := s.baseRecommendations(ctx, customer, risk)
	if err != nil {
		return nil, domain.PreferenceSummary{}, err
	}

	preferred := make(map[domain.ProductCategory]bool, len(prefs.PreferredCategories))
	for _, cat := range prefs.PreferredCategories {
		preferred[cat] = true
	}
	avoided := make(map[domain.ProductCategory]bool, len(prefs.AvoidedCategories))
	for _, cat := range prefs.AvoidedCategories {
		avoided[cat] = true
	}

	for i := range recs {
		weight := 1.0
		switch {
		case preferred[recs[i].Category]:
			weight *= s.cfg.PreferredWeight
		case avoided[recs[i].Category]:
			weight *= s.cfg.AvoidedWeight
		}

		if prefs.PreferredRiskLevel != nil && recs[i].RiskLevel == *prefs.PreferredRiskLevel {
			weight *= s.cfg.RiskMatchWeight
		}

		recs[i].MatchScore = clampScore(recs[i].MatchScore * weight)
		recs[i].Strength = domain.StrengthForScore(recs[i].MatchScore)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})

	if len(recs) > s.cfg.MaxRecommendations {
		recs = recs[:s.cfg.MaxRecommendations]
	}

	if err := ctx.Err(); err != nil {
		return nil, domain.PreferenceSummary{}, fmt.Errorf("context error: %w", err)
	}

	return recs, prefs, nil
}
