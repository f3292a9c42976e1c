package domain

const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// CustomerProfile holds the demographic attributes resolved for a customer
// number. Profiles are never persisted; unknown customers resolve to a
// deterministic synthetic profile, so re-resolving is always cheap and stable.
type CustomerProfile struct {
	CustNo        string  `json:"cust_no"`
	BirthYM       string  `json:"birth_ym"` // YYYYMM
	Age           int     `json:"age"`
	LocationCode  string  `json:"loc_cd"`
	Gender        string  `json:"gender"` // M / F
	Education     string  `json:"edu_bg"`
	MaritalStatus string  `json:"marriage_situ_cd"`
	AccountOpened string  `json:"init_dt"` // YYYY-MM-DD
	IsHighValue   bool    `json:"is_high_value"`
	AnnualIncome  float64 `json:"annual_income"`
	Assets        float64 `json:"assets"`
}

// RiskProfile is the investment risk appetite resolved for a customer number.
type RiskProfile struct {
	OverallRisk          string `json:"overall_risk"` // low / medium / high
	InvestmentExperience string `json:"investment_experience"`
	PreferenceType       string `json:"preference_type"`
	RiskScore            int    `json:"risk_score"` // 0..100
}
