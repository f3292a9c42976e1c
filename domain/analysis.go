package domain

// CustomerInsight is the advisory summary shown next to recommendations.
type CustomerInsight struct {
	RiskLevel          string            `json:"risk_level"`
	SuitableCategories []ProductCategory `json:"suitable_categories"`
	InvestmentCapacity string            `json:"investment_capacity"`
	Recommendation     string            `json:"recommendation"`
}

// ProductAnalysis is the market review for a product draft.
type ProductAnalysis struct {
	Conflicts       []ProductConflict `json:"conflicts"`
	TargetCustomers []TargetCustomer  `json:"target_customers"`
	RevenueForecast RevenueForecast   `json:"revenue_forecast"`
}

// ProductConflict flags overlap between a draft product and the live catalog.
type ProductConflict struct {
	Type        string `json:"type"`
	Product     string `json:"product"`
	Level       string `json:"level"` // high / medium / low
	Description string `json:"description"`
}

// TargetCustomer is a customer matched against a draft product.
type TargetCustomer struct {
	CustNo string  `json:"cust_no"`
	Age    int     `json:"age"`
	Gender string  `json:"gender"`
	Risk   string  `json:"risk"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// RevenueForecast is an arithmetic placeholder, not a model output.
type RevenueForecast struct {
	ROI            string `json:"roi"`
	FirstYear      int    `json:"first_year"`
	ThreeYear      int    `json:"three_year"`
	BreakevenMonth int    `json:"breakeven_month"`
}
