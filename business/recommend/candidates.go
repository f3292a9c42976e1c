package recommend

import "lingxi/domain"

// riskThreshold derives the highest comfortable product risk level from the
// 0..100 risk score. A product may still exceed it by cfg.RiskSlack steps.
func riskThreshold(riskScore int) int {
	t := riskScore/33 + 1
	if t < 1 {
		t = 1
	}
	return t
}

// filterCandidates drops products the customer should never see, before any
// scoring happens. The three gates, in order: risk ceiling, age band with
// slack, affordability.
func filterCandidates(cfg Config, c domain.CustomerProfile, risk domain.RiskProfile, products []domain.Product) []domain.Product {
	threshold := riskThreshold(risk.RiskScore)

	candidates := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.RiskLevel > threshold+cfg.RiskSlack {
			continue
		}

		if c.Age < p.Target.MinAge-cfg.AgeSlackBelow || c.Age > p.Target.MaxAge+cfg.AgeSlackAbove {
			continue
		}

		if c.Assets > 0 && p.MinAmount > c.Assets*cfg.AssetCapRatio {
			continue
		}

		candidates = append(candidates, p)
	}

	return candidates
}
