package recommend

// Config carries every constant of the scoring, filtering and re-ranking
// pipeline. Values are fixed tuning from the original product team; change
// them together with the expectations in the package tests.
type Config struct {
	BaseScore float64

	// age-band rule
	SeniorAgeBonus float64 // age >= 60 and product risk <= 2
	MatureAgeBonus float64 // age >= 40 and product risk <= 3

	// risk-bucket affinity rule
	RiskExactBonus    float64
	RiskAdjacentBonus float64

	// education x category affinity rule
	EducationBonus float64

	// high-value customer rule
	HighValueBonus     float64
	HighValueMinAmount float64

	// candidacy filters
	RiskSlack     int     // product risk may exceed the threshold by this many steps
	AgeSlackBelow int     // years below the target band still accepted
	AgeSlackAbove int     // years above the target band still accepted
	AssetCapRatio float64 // product minimum must stay under this share of assets

	// result shaping
	MinRecommendations int
	MaxRecommendations int
	FallbackScore      float64
	TopUpScore         float64

	// feedback re-ranking multipliers
	PreferredWeight float64
	AvoidedWeight   float64
	RiskMatchWeight float64
}

func DefaultConfig() Config {
	return Config{
		BaseScore: 50,

		SeniorAgeBonus: 30,
		MatureAgeBonus: 20,

		RiskExactBonus:    20,
		RiskAdjacentBonus: 10,

		EducationBonus: 10,

		HighValueBonus:     10,
		HighValueMinAmount: 100000,

		RiskSlack:     2,
		AgeSlackBelow: 5,
		AgeSlackAbove: 10,
		AssetCapRatio: 0.05,

		MinRecommendations: 3,
		MaxRecommendations: 5,
		FallbackScore:      60,
		TopUpScore:         55,

		PreferredWeight: 1.5,
		AvoidedWeight:   0.5,
		RiskMatchWeight: 1.3,
	}
}
