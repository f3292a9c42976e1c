package domain

type ProductCategory string

const (
	CategorySavings   ProductCategory = "savings"
	CategoryCredit    ProductCategory = "credit"
	CategoryWealth    ProductCategory = "wealth"
	CategoryInsurance ProductCategory = "insurance"
)

// TargetProfile is the customer segment a product is designed for.
type TargetProfile struct {
	MinAge        int    `json:"min_age"`
	MaxAge        int    `json:"max_age"`
	RiskTolerance string `json:"risk_tolerance"`
	WealthLevel   string `json:"wealth_level"`
	Preference    string `json:"preference"`
}

// Product is one offerable financial product. The catalog is seeded once at
// startup and never mutated afterwards.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  ProductCategory `json:"category"`
	RiskLevel int             `json:"risk_level"` // 1 (lowest) .. 4 (highest)
	MinAmount float64         `json:"min_amount"`
	Target    TargetProfile   `json:"target_profile"`
	Features  []string        `json:"features"`
}

// ProductDraft is a not-yet-offered product submitted for market analysis.
type ProductDraft struct {
	Name      string          `json:"name"`
	Category  ProductCategory `json:"category"`
	RiskLevel int             `json:"risk_level"`
	MinAmount float64         `json:"min_amount"`
	MinAge    int             `json:"min_age"`
	MaxAge    int             `json:"max_age"`
}
