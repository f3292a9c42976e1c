package domain

import "time"

const (
	FeedbackInterested    = "interested"
	FeedbackNotInterested = "not_interested"
	FeedbackAlreadyHave   = "already_have"
)

// FeedbackSample is one recorded feedback event tying a customer to a product
// with a binary label. Samples are append-only and live for the process
// lifetime.
type FeedbackSample struct {
	ID          string    `json:"id"`
	CustNo      string    `json:"cust_no"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Feedback    string    `json:"feedback"`
	Label       int       `json:"label"` // interested=1, anything else=0
	CreatedAt   time.Time `json:"created_at"`
}

// FeedbackLabel derives the binary training label from a feedback string.
func FeedbackLabel(feedback string) int {
	if feedback == FeedbackInterested {
		return 1
	}
	return 0
}

// SampleStats summarizes one customer's accumulated samples.
type SampleStats struct {
	TotalSamples    int    `json:"total_samples"`
	PositiveSamples int    `json:"positive_samples"`
	NegativeSamples int    `json:"negative_samples"`
	PositiveRatio   string `json:"positive_ratio"`
	NegativeRatio   string `json:"negative_ratio"`
	Insights        string `json:"insights"`
}

// PreferenceSummary is the re-ranker's view of accumulated feedback.
// PreferredRiskLevel is nil when no positive samples exist.
type PreferenceSummary struct {
	PreferredCategories []ProductCategory `json:"preferred_categories"`
	AvoidedCategories   []ProductCategory `json:"avoided_categories"`
	PreferredRiskLevel  *int              `json:"preferred_risk_level"`
}
