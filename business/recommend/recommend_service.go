package recommend

import (
	"context"
	"fmt"
	"sort"

	"lingxi/domain"
	"lingxi/pkg/logger"
	"lingxi/pkg/metrics"
)

// ---- Repository interfaces ----

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (domain.Product, error)
	LowestRisk(ctx context.Context, n int, exclude map[string]bool) ([]domain.Product, error)
}

type ProfileResolver interface {
	Resolve(custNo string) domain.CustomerProfile
	ResolveRisk(custNo string) domain.RiskProfile
}

type FeedbackReader interface {
	FindByCustomer(ctx context.Context, custNo string) ([]domain.FeedbackSample, error)
}

// ---- Usecase / Service ----

type RecommendService struct {
	catalog  ProductRepository
	resolver ProfileResolver
	feedback FeedbackReader
	cfg      Config
}

func NewRecommendService(
	catalog ProductRepository,
	resolver ProfileResolver,
	feedback FeedbackReader,
	cfg Config,
) *RecommendService {
	return &RecommendService{
		catalog:  catalog,
		resolver: resolver,
		feedback: feedback,
		cfg:      cfg,
	}
}

// Recommend resolves the customer and returns the scored top products.
// The result always holds between MinRecommendations and MaxRecommendations
// entries.
func (s *RecommendService) Recommend(ctx context.Context, custNo string) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	customer := s.resolver.Resolve(custNo)
	risk := s.resolver.ResolveRisk(custNo)

	recs, err := s.baseRecommendations(ctx, customer, risk)
	if err != nil {
		return nil, err
	}

	logger.Debug("recommendations generated",
		"cust_no", custNo,
		"age", customer.Age,
		"overall_risk", risk.OverallRisk,
		"count", len(recs),
	)

	metrics.RecommendTotal.Inc()
	return recs, nil
}

// NextRecommendations re-ranks the base recommendations with the customer's
// accumulated feedback samples.
func (s *RecommendService) NextRecommendations(ctx context.Context, custNo string) ([]domain.Recommendation, domain.PreferenceSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.PreferenceSummary{}, fmt.Errorf("context error: %w", err)
	}

	customer := s.resolver.Resolve(custNo)
	risk := s.resolver.ResolveRisk(custNo)

	samples, err := s.feedback.FindByCustomer(ctx, custNo)
	if err != nil {
		return nil, domain.PreferenceSummary{}, fmt.Errorf("load feedback samples: %w", err)
	}

	recs, prefs, err := s.rerank(ctx, customer, risk, samples)
	if err != nil {
		return nil, domain.PreferenceSummary{}, err
	}

	logger.Debug("re-ranked recommendations",
		"cust_no", custNo,
		"samples", len(samples),
		"preferred_categories", len(prefs.PreferredCategories),
		"count", len(recs),
	)

	return recs, prefs, nil
}

// DebugRecommend returns the per-rule score breakdown for inspection. The
// candidate set is identical to Recommend's, but without fallback top-up.
func (s *RecommendService) DebugRecommend(ctx context.Context, custNo string) ([]domain.DebugRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	customer := s.resolver.Resolve(custNo)
	risk := s.resolver.ResolveRisk(custNo)

	products, err := s.catalog.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	candidates := filterCandidates(s.cfg, customer, risk, products)

	out := make([]domain.DebugRecommendation, 0, len(candidates))
	for _, p := range candidates {
		rec, hits := scoreProduct(s.cfg, customer, risk, p)

		raw := s.cfg.BaseScore
		for _, h := range hits {
			raw += h.Bonus
		}

		out = append(out, domain.DebugRecommendation{
			ProductID:  p.ID,
			Name:       p.Name,
			BaseScore:  s.cfg.BaseScore,
			RuleHits:   hits,
			RawScore:   raw,
			FinalScore: rec.MatchScore,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinalScore > out[j].FinalScore
	})

	return out, nil
}

// baseRecommendations runs filter -> score -> sort -> fallback/top-up -> cap.
func (s *RecommendService) baseRecommendations(ctx context.Context, customer domain.CustomerProfile, risk domain.RiskProfile) ([]domain.Recommendation, error) {
	products, err := s.catalog.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	candidates := filterCandidates(s.cfg, customer, risk, products)

	recs := make([]domain.Recommendation, 0, len(candidates))
	for _, p := range candidates {
		rec, _ := scoreProduct(s.cfg, customer, risk, p)
		recs = append(recs, rec)
	}

	// stable: score ties keep catalog order
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})

	if len(recs) == 0 {
		metrics.FallbackTotal.Inc()
		return s.fallbackRecommendations(ctx)
	}

	if len(recs) > s.cfg.MaxRecommendations {
		recs = recs[:s.cfg.MaxRecommendations]
	}

	if len(recs) < s.cfg.MinRecommendations {
		metrics.FallbackTotal.Inc()
		topUp, err := s.topUpRecommendations(ctx, recs)
		if err != nil {
			return nil, err
		}
		recs = append(recs, topUp...)
	}

	return recs, nil
}

// fallbackRecommendations serves the safest products when filtering left
// nothing at all.
func (s *RecommendService) fallbackRecommendations(ctx context.Context) ([]domain.Recommendation, error) {
	safest, err := s.catalog.LowestRisk(ctx, s.cfg.MinRecommendations, nil)
	if err != nil {
		return nil, fmt.Errorf("load fallback products: %w", err)
	}

	recs := make([]domain.Recommendation, 0, len(safest))
	for _, p := range safest {
		recs = append(recs, domain.Recommendation{
			ProductID:   p.ID,
			Name:        p.Name,
			Category:    p.Category,
			RiskLevel:   p.RiskLevel,
			MinAmount:   p.MinAmount,
			Features:    p.Features,
			MatchScore:  s.cfg.FallbackScore,
			MatchReason: "safe conservative pick",
			Strength:    domain.StrengthForScore(s.cfg.FallbackScore),
		})
	}
	return recs, nil
}

// topUpRecommendations fills the list up to the minimum with the lowest-risk
// products not already selected.
func (s *RecommendService) topUpRecommendations(ctx context.Context, existing []domain.Recommendation) ([]domain.Recommendation, error) {
	exclude := make(map[string]bool, len(existing))
	for _, rec := range existing {
		exclude[rec.ProductID] = true
	}

	needed := s.cfg.MinRecommendations - len(existing)
	safest, err := s.catalog.LowestRisk(ctx, needed, exclude)
	if err != nil {
		return nil, fmt.Errorf("load top-up products: %w", err)
	}

	topUp := make([]domain.Recommendation, 0, len(safest))
	for _, p := range safest {
		topUp = append(topUp, domain.Recommendation{
			ProductID:   p.ID,
			Name:        p.Name,
			Category:    p.Category,
			RiskLevel:   p.RiskLevel,
			MinAmount:   p.MinAmount,
			Features:    p.Features,
			MatchScore:  s.cfg.TopUpScore,
			MatchReason: "supplementary low-risk pick",
			Strength:    domain.StrengthForScore(s.cfg.TopUpScore),
		})
	}
	return topUp, nil
}
