package domain

const (
	StrengthStrong = "strong"
	StrengthMedium = "medium"
	StrengthWeak   = "weak"
)

// StrengthForScore buckets a match score into a recommendation strength.
func StrengthForScore(score float64) string {
	switch {
	case score >= 80:
		return StrengthStrong
	case score >= 60:
		return StrengthMedium
	default:
		return StrengthWeak
	}
}

// Recommendation is one scored product for a customer. MatchScore is always
// clamped to [0,100].
type Recommendation struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Category    ProductCategory `json:"category"`
	RiskLevel   int             `json:"risk_level"`
	MinAmount   float64         `json:"min_amount"`
	Features    []string        `json:"features"`
	MatchScore  float64         `json:"match_score"`
	MatchReason string          `json:"match_reason"`
	Strength    string          `json:"strength"`
}

// RuleHit records one scoring rule that fired for a product.
type RuleHit struct {
	Rule  string  `json:"rule"`
	Bonus float64 `json:"bonus"`
}

// DebugRecommendation exposes the per-rule score breakdown for inspection.
type DebugRecommendation struct {
	ProductID  string    `json:"product_id"`
	Name       string    `json:"name"`
	BaseScore  float64   `json:"base_score"`
	RuleHits   []RuleHit `json:"rule_hits"`
	RawScore   float64   `json:"raw_score"` // before clamping
	FinalScore float64   `json:"final_score"`
}
