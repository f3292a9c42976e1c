package recommend

import (
	"lingxi/domain"
	"math"
	"strings"
)

// scoreRule is one additive scoring heuristic. bonus returns 0 when the rule
// does not apply; anything else is added to the base score.
type scoreRule struct {
	name   string
	reason string
	bonus  func(cfg Config, c domain.CustomerProfile, risk domain.RiskProfile, p domain.Product) float64
}

// scoreRules is applied in order by scoreProduct. Keeping the heuristics as a
// flat list keeps each one independently testable.
var scoreRules = []scoreRule{
	{
		name:   "age_band",
		reason: "suits steady investing at the customer's age",
		bonus: func(cfg Config, c domain.CustomerProfile, _ domain.RiskProfile, p domain.Product) float64 {
			switch {
			case c.Age >= 60 && p.RiskLevel <= 2:
				return cfg.SeniorAgeBonus
			case c.Age >= 40 && p.RiskLevel <= 3:
				return cfg.MatureAgeBonus
			default:
				return 0
			}
		},
	},
	{
		name:   "risk_affinity",
		reason: "matches the customer's risk appetite",
		bonus: func(cfg Config, _ domain.CustomerProfile, risk domain.RiskProfile, p domain.Product) float64 {
			target := bucketTargetLevel(risk.OverallRisk)
			switch int(math.Abs(float64(p.RiskLevel - target))) {
			case 0:
				return cfg.RiskExactBonus
			case 1:
				return cfg.RiskAdjacentBonus
			default:
				return 0
			}
		},
	},
	{
		name:   "education_affinity",
		reason: "aligns with the customer's education profile",
		bonus: func(cfg Config, c domain.CustomerProfile, _ domain.RiskProfile, p domain.Product) float64 {
			if c.Education == "master" && p.Category == domain.CategoryWealth {
				return cfg.EducationBonus
			}
			if c.Education == "bachelor" && p.Category == domain.CategorySavings {
				return cfg.EducationBonus
			}
			return 0
		},
	},
	{
		name:   "high_value",
		reason: "suited to high net worth customers",
		bonus: func(cfg Config, c domain.CustomerProfile, _ domain.RiskProfile, p domain.Product) float64 {
			if c.IsHighValue && p.MinAmount >= cfg.HighValueMinAmount {
				return cfg.HighValueBonus
			}
			return 0
		},
	},
}

// bucketTargetLevel maps a risk bucket to the product risk level it most
// naturally pairs with.
func bucketTargetLevel(bucket string) int {
	switch bucket {
	case domain.RiskLow:
		return 1
	case domain.RiskHigh:
		return 4
	default:
		return 3
	}
}

const genericMatchReason = "recommended from customer characteristics"

func clampScore(score float64) float64 {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// scoreProduct folds the rule list over one product and returns the finished
// recommendation plus the per-rule breakdown.
func scoreProduct(cfg Config, c domain.CustomerProfile, risk domain.RiskProfile, p domain.Product) (domain.Recommendation, []domain.RuleHit) {
	score := cfg.BaseScore
	hits := make([]domain.RuleHit, 0, len(scoreRules))
	reasons := make([]string, 0, len(scoreRules))

	for _, rule := range scoreRules {
		bonus := rule.bonus(cfg, c, risk, p)
		if bonus == 0 {
			continue
		}
		score += bonus
		hits = append(hits, domain.RuleHit{Rule: rule.name, Bonus: bonus})
		reasons = append(reasons, rule.reason)
	}

	reason := genericMatchReason
	if len(reasons) > 0 {
		reason = strings.Join(reasons, "; ")
	}

	final := clampScore(score)
	return domain.Recommendation{
		ProductID:   p.ID,
		Name:        p.Name,
		Category:    p.Category,
		RiskLevel:   p.RiskLevel,
		MinAmount:   p.MinAmount,
		Features:    p.Features,
		MatchScore:  final,
		MatchReason: reason,
		Strength:    domain.StrengthForScore(final),
	}, hits
}
