package recommend

import "lingxi/domain"

// Insight summarizes what kind of investor the customer is. Pure derivation
// from the resolved profiles; no catalog access.
func (s *RecommendService) Insight(customer domain.CustomerProfile, risk domain.RiskProfile) domain.CustomerInsight {
	return domain.CustomerInsight{
		RiskLevel:          riskLevelText(risk.OverallRisk),
		SuitableCategories: suitableCategories(risk.OverallRisk),
		InvestmentCapacity: investmentCapacity(customer),
		Recommendation:     advisoryText(risk.OverallRisk, customer.Age),
	}
}

func riskLevelText(risk string) string {
	switch risk {
	case domain.RiskLow:
		return "low risk"
	case domain.RiskHigh:
		return "high risk"
	case domain.RiskMedium:
		return "medium risk"
	default:
		return "unknown"
	}
}

func suitableCategories(risk string) []domain.ProductCategory {
	switch risk {
	case domain.RiskLow:
		return []domain.ProductCategory{domain.CategorySavings, domain.CategoryInsurance}
	case domain.RiskHigh:
		return []domain.ProductCategory{domain.CategoryWealth, domain.CategoryCredit}
	default:
		return []domain.ProductCategory{domain.CategorySavings, domain.CategoryWealth, domain.CategoryInsurance}
	}
}

func investmentCapacity(customer domain.CustomerProfile) string {
	switch {
	case customer.Assets > 3000000:
		return "high"
	case customer.Assets > 1000000:
		return "medium"
	default:
		return "low"
	}
}

func advisoryText(risk string, age int) string {
	switch {
	case age >= 60:
		return "favor capital-preserving products; prioritize stability over yield"
	case risk == domain.RiskHigh:
		return "higher-risk products are acceptable in pursuit of returns"
	default:
		return "balance the portfolio between yield and safety"
	}
}
