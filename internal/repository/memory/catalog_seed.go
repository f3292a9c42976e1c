package memory

import "lingxi/domain"

// seedProducts is the full offerable catalog. IDs are stable and referenced
// by recorded feedback samples, so never reuse one for a different product.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:        "SAVE_NEW_001",
			Name:      "Jumbo Certificate of Deposit",
			Category:  domain.CategorySavings,
			RiskLevel: 1,
			MinAmount: 200000,
			Target: domain.TargetProfile{
				MinAge:        50,
				MaxAge:        80,
				RiskTolerance: domain.RiskLow,
				WealthLevel:   "medium",
				Preference:    "conservative",
			},
			Features: []string{"principal protected", "fixed return", "premium rate"},
		},
		{
			ID:        "SAVE_002",
			Name:      "Fixed-Term Deposit",
			Category:  domain.CategorySavings,
			RiskLevel: 1,
			MinAmount: 50000,
			Target: domain.TargetProfile{
				MinAge:        30,
				MaxAge:        70,
				RiskTolerance: domain.RiskLow,
				WealthLevel:   "low",
				Preference:    "conservative",
			},
			Features: []string{"principal protected", "steady return", "flexible term"},
		},
		{
			ID:        "SAVE_003",
			Name:      "Education Savings Plan",
			Category:  domain.CategorySavings,
			RiskLevel: 1,
			MinAmount: 10000,
			Target: domain.TargetProfile{
				MinAge:        30,
				MaxAge:        50,
				RiskTolerance: domain.RiskLow,
				WealthLevel:   "medium",
				Preference:    "conservative",
			},
			Features: []string{"earmarked savings", "tax exempt", "scheduled deposits"},
		},
		{
			ID:        "SAVE_004",
			Name:      "Retirement Savings Plan",
			Category:  domain.CategorySavings,
			RiskLevel: 1,
			MinAmount: 50000,
			Target: domain.TargetProfile{
				MinAge:        40,
				MaxAge:        65,
				RiskTolerance: domain.RiskLow,
				WealthLevel:   "medium",
				Preference:    "conservative",
			},
			Features: []string{"retirement planning", "tax deferred", "long-term growth"},
		},
		{
			ID:        "CREDIT_001",
			Name:      "Personal Consumer Loan",
			Category:  domain.CategoryCredit,
			RiskLevel: 2,
			MinAmount: 10000,
			Target: domain.TargetProfile{
				MinAge:        25,
				MaxAge:        55,
				RiskTolerance: domain.RiskMedium,
				WealthLevel:   "medium",
				Preference:    "flexible",
			},
			Features: []string{"low rate", "fast approval", "flexible repayment"},
		},
		{
			ID:        "CREDIT_002",
			Name:      "Home Mortgage",
			Category:  domain.CategoryCredit,
			RiskLevel: 2,
			MinAmount: 500000,
			Target: domain.TargetProfile{
				MinAge:        25,
				MaxAge:        50,
				RiskTolerance: domain.RiskLow,
				WealthLevel:   "high",
				Preference:    "stable",
			},
			Features: []string{"low rate", "long tenor", "high limit"},
		},
		{
			ID:        "CREDIT_003",
			Name:      "Business Operating Loan",
			Category:  domain.CategoryCredit,
			RiskLevel: 3,
			MinAmount: 100000,
			Target: domain.TargetProfile{
				MinAge:        30,
				MaxAge:        60,
				RiskTolerance: domain.RiskHigh,
				WealthLevel:   "high",
				Preference:    "business",
			},
			Features: []string{"flexible limit", "revolving drawdown", "multi-purpose"},
		},
		{
			ID:        "WEALTH_001",
			Name:      "Smart Portfolio",
			Category:  domain.CategoryWealth,
			RiskLevel: 3,
			MinAmount: 1000,
			Target: domain.TargetProfile{
				MinAge:        25,
				MaxAge:        60,
				RiskTolerance: domain.RiskMedium,
				WealthLevel:   "medium",
				Preference:    "growth",
			},
			Features: []string{"professional management", "diversified", "flexible subscription"},
		},
		{
			ID:        "WEALTH_002",
			Name:      "Equity Fund",
			Category:  domain.CategoryWealth,
			RiskLevel: 4,
			MinAmount: 1000,
			Target: domain.TargetProfile{
				MinAge:        25,
				MaxAge:        50,
				RiskTolerance: domain.RiskHigh,
				WealthLevel:   "medium",
				Preference:    "aggressive",
			},
			Features: []string{"high upside", "professional investing", "risk spread"},
		},
		{
			ID:        "WEALTH_003",
			Name:      "Bond Fund",
			Category:  domain.CategoryWealth,
			RiskLevel: 2,
			MinAmount: 1000,
			Target: domain.TargetProfile{
				MinAge:        35,
				MaxAge:        65,
				RiskTolerance: domain.RiskLow,
				WealthLevel:   "medium",
				Preference:    "stable",
			},
			Features: []string{"steady return", "low risk", "periodic dividends"},
		},
		{
			ID:        "WEALTH_004",
			Name:      "Balanced Fund",
			Category:  domain.CategoryWealth,
			RiskLevel: 3,
			MinAmount: 1000,
			Target: domain.TargetProfile{
				MinAge:        30,
				MaxAge:        55,
				RiskTolerance: domain.RiskMedium,
				WealthLevel:   "medium",
				Preference:    "balanced",
			},
			Features: []string{"stock-bond mix", "balanced risk", "steady growth"},
		},
		{
			ID:        "WEALTH_005",
			Name:      "Money Market Fund",
			Category:  domain.CategoryWealth,
			RiskLevel: 1,
			MinAmount: 1,
			Target: domain.TargetProfile{
				MinAge:        18,
				MaxAge:        70,
				RiskTolerance: domain.RiskLow,
				WealthLevel:   "low",
				Preference:    "liquid",
			},
			Features: []string{"high liquidity", "steady return", "same-day redemption"},
		},
		{
			ID:        "INSURE_001",
			Name:      "Whole Life Insurance",
			Category:  domain.CategoryInsurance,
			RiskLevel: 1,
			MinAmount: 5000,
			Target: domain.TargetProfile{
				MinAge:        25,
				MaxAge:        55,
				RiskTolerance: domain.RiskLow,
				WealthLevel:   "medium",
				Preference:    "protection",
			},
			Features: []string{"full coverage", "wealth transfer", "cash value"},
		},
		{
			ID:        "INSURE_002",
			Name:      "Critical Illness Insurance",
			Category:  domain.CategoryInsurance,
			RiskLevel: 1,
			MinAmount: 3000,
			Target: domain.TargetProfile{
				MinAge:        20,
				MaxAge:        50,
				RiskTolerance: domain.RiskLow,
				WealthLevel:   "low",
				Preference:    "health",
			},
			Features: []string{"critical illness cover", "premium waiver", "multiple payouts"},
		},
		{
			ID:        "INSURE_003",
			Name:      "Medical Insurance",
			Category:  domain.CategoryInsurance,
			RiskLevel: 1,
			MinAmount: 1000,
			Target: domain.TargetProfile{
				MinAge:        18,
				MaxAge:        60,
				RiskTolerance: domain.RiskLow,
				WealthLevel:   "low",
				Preference:    "health",
			},
			Features: []string{"medical reimbursement", "hospital allowance", "social insurance top-up"},
		},
		{
			ID:        "INSURE_004",
			Name:      "Accident Insurance",
			Category:  domain.CategoryInsurance,
			RiskLevel: 1,
			MinAmount: 500,
			Target: domain.TargetProfile{
				MinAge:        18,
				MaxAge:        65,
				RiskTolerance: domain.RiskLow,
				WealthLevel:   "low",
				Preference:    "protection",
			},
			Features: []string{"accident cover", "death and disability", "low premium"},
		},
		{
			ID:        "INSURE_005",
			Name:      "Annuity Insurance",
			Category:  domain.CategoryInsurance,
			RiskLevel: 2,
			MinAmount: 10000,
			Target: domain.TargetProfile{
				MinAge:        30,
				MaxAge:        60,
				RiskTolerance: domain.RiskLow,
				WealthLevel:   "high",
				Preference:    "retirement",
			},
			Features: []string{"retirement planning", "flexible payout", "guaranteed return"},
		},
	}
}
