package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingxi/domain"
)

func sample(productID string, label int) domain.FeedbackSample {
	feedback := domain.FeedbackNotInterested
	if label == 1 {
		feedback = domain.FeedbackInterested
	}
	return domain.FeedbackSample{
		ID:        productID + "-sample",
		CustNo:    "TEST",
		ProductID: productID,
		Feedback:  feedback,
		Label:     label,
	}
}

func TestAnalyzePreferencesEmptyHistory(t *testing.T) {
	svc := newTestService(domain.CustomerProfile{}, domain.RiskProfile{}, nil)

	prefs, err := svc.analyzePreferences(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, prefs.PreferredCategories)
	assert.Empty(t, prefs.AvoidedCategories)
	assert.Nil(t, prefs.PreferredRiskLevel)
}

func TestAnalyzePreferencesSplitsCategories(t *testing.T) {
	svc := newTestService(domain.CustomerProfile{}, domain.RiskProfile{}, nil)

	samples := []domain.FeedbackSample{
		sample("WEALTH_002", 1), // wealth, risk 4
		sample("WEALTH_001", 1), // wealth, risk 3
		sample("SAVE_003", 0),   // savings
	}

	prefs, err := svc.analyzePreferences(context.Background(), samples)
	require.NoError(t, err)

	assert.Equal(t, []domain.ProductCategory{domain.CategoryWealth}, prefs.PreferredCategories)
	assert.Equal(t, []domain.ProductCategory{domain.CategorySavings}, prefs.AvoidedCategories)

	// mean of 4 and 3 rounds to 4
	require.NotNil(t, prefs.PreferredRiskLevel)
	assert.Equal(t, 4, *prefs.PreferredRiskLevel)
}

func TestAnalyzePreferencesSkipsOffCatalogProducts(t *testing.T) {
	svc := newTestService(domain.CustomerProfile{}, domain.RiskProfile{}, nil)

	samples := []domain.FeedbackSample{
		sample("GONE_001", 1),
		sample("GONE_002", 0),
	}

	prefs, err := svc.analyzePreferences(context.Background(), samples)
	require.NoError(t, err)

	assert.Empty(t, prefs.PreferredCategories)
	assert.Empty(t, prefs.AvoidedCategories)
	assert.Nil(t, prefs.PreferredRiskLevel)
}

func TestAnalyzePreferencesNegativeOnlyLeavesRiskNil(t *testing.T) {
	svc := newTestService(domain.CustomerProfile{}, domain.RiskProfile{}, nil)

	prefs, err := svc.analyzePreferences(context.Background(), []domain.FeedbackSample{
		sample("WEALTH_001", 0),
	})
	require.NoError(t, err)

	assert.Nil(t, prefs.PreferredRiskLevel)
	assert.Equal(t, []domain.ProductCategory{domain.CategoryWealth}, prefs.AvoidedCategories)
}

func TestNextRecommendationsBoostsPreferredAndDampensAvoided(t *testing.T) {
	profile, risk := midlifeBalancedProfile()
	samples := []domain.FeedbackSample{
		sample("WEALTH_002", 1), // preferred: wealth
		sample("SAVE_003", 0),   // avoided: savings
	}
	svc := newTestService(profile, risk, samples)

	recs, prefs, err := svc.NextRecommendations(context.Background(), profile.CustNo)
	require.NoError(t, err)

	assert.Equal(t, []domain.ProductCategory{domain.CategoryWealth}, prefs.PreferredCategories)
	assert.Equal(t, []domain.ProductCategory{domain.CategorySavings}, prefs.AvoidedCategories)

	require.Len(t, recs, 5)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].MatchScore, recs[i].MatchScore)
	}

	// the boosted wealth funds saturate at the clamp, the avoided savings
	// plan sinks to the bottom
	assert.Equal(t, domain.CategoryWealth, recs[0].Category)
	assert.Equal(t, float64(100), recs[0].MatchScore)

	last := recs[len(recs)-1]
	assert.Equal(t, "SAVE_003", last.ProductID)
	assert.Equal(t, float64(40), last.MatchScore)
	assert.Equal(t, domain.StrengthWeak, last.Strength)
}

func TestRerankPreferredWinsOverAvoided(t *testing.T) {
	profile, risk := midlifeBalancedProfile()
	samples := []domain.FeedbackSample{
		sample("WEALTH_001", 1),
		sample("WEALTH_002", 0),
	}
	svc := newTestService(profile, risk, samples)

	recs, prefs, err := svc.NextRecommendations(context.Background(), profile.CustNo)
	require.NoError(t, err)

	assert.Contains(t, prefs.PreferredCategories, domain.CategoryWealth)
	assert.Contains(t, prefs.AvoidedCategories, domain.CategoryWealth)

	// wealth counts as preferred, so its recommendations get boosted, never
	// halved
	for _, rec := range recs {
		if rec.Category == domain.CategoryWealth {
			assert.GreaterOrEqual(t, rec.MatchScore, float64(80))
		}
	}
}

func TestRerankSinglePositiveSampleNeverLowersCategoryScores(t *testing.T) {
	profile, risk := midlifeBalancedProfile()

	before := newTestService(profile, risk, nil)
	baseline, _, err := before.NextRecommendations(context.Background(), profile.CustNo)
	require.NoError(t, err)

	after := newTestService(profile, risk, []domain.FeedbackSample{
		sample("WEALTH_001", 1),
	})
	boosted, _, err := after.NextRecommendations(context.Background(), profile.CustNo)
	require.NoError(t, err)

	baseScores := make(map[string]float64, len(baseline))
	for _, rec := range baseline {
		baseScores[rec.ProductID] = rec.MatchScore
	}

	for _, rec := range boosted {
		if rec.Category != domain.CategoryWealth {
			continue
		}
		if base, ok := baseScores[rec.ProductID]; ok {
			assert.GreaterOrEqual(t, rec.MatchScore, base)
		}
	}
}

func TestRerankScoresStayClamped(t *testing.T) {
	profile, risk := midlifeBalancedProfile()
	samples := []domain.FeedbackSample{
		sample("WEALTH_001", 1),
		sample("WEALTH_004", 1),
	}
	svc := newTestService(profile, risk, samples)

	recs, _, err := svc.NextRecommendations(context.Background(), profile.CustNo)
	require.NoError(t, err)

	require.NotEmpty(t, recs)
	for _, rec := range recs {
		assert.LessOrEqual(t, rec.MatchScore, float64(100))
		assert.GreaterOrEqual(t, rec.MatchScore, float64(0))
		assert.Equal(t, domain.StrengthForScore(rec.MatchScore), rec.Strength)
	}
}
