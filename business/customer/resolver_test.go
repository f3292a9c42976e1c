package customer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingxi/domain"
)

func TestResolveIsDeterministic(t *testing.T) {
	r := NewResolver()

	first := r.Resolve("FFFF00000000000000000000DEADBEEF")
	second := r.Resolve("FFFF00000000000000000000DEADBEEF")

	assert.Equal(t, first, second)
}

func TestResolveDistinctCustomersDiffer(t *testing.T) {
	r := NewResolver()

	a := r.Resolve("AAAA000000000000000000000000000A")
	b := r.Resolve("BBBB000000000000000000000000000B")

	assert.NotEqual(t, a, b)
}

func TestResolveKnownCustomerReturnsLiteral(t *testing.T) {
	r := NewResolver()

	profile := r.Resolve("CDB91DCCE198B10A522FE2AABF6A8D81")

	assert.Equal(t, 82, profile.Age)
	assert.Equal(t, "bachelor", profile.Education)
	assert.True(t, profile.IsHighValue)
	assert.Equal(t, float64(5000000), profile.Assets)
}

func TestResolveSyntheticFieldDomains(t *testing.T) {
	r := NewResolver()

	custNos := []string{
		"0000000000000000000000000000000A",
		"1111111111111111111111111111111B",
		"2222222222222222222222222222222C",
		"3333333333333333333333333333333D",
		"4444444444444444444444444444444E",
	}

	for _, custNo := range custNos {
		profile := r.Resolve(custNo)

		assert.Equal(t, custNo, profile.CustNo)
		assert.Contains(t, locationCodes, profile.LocationCode)
		assert.Contains(t, educationTiers, profile.Education)
		assert.Contains(t, maritalTiers, profile.MaritalStatus)
		assert.Contains(t, []string{"M", "F"}, profile.Gender)
		assert.GreaterOrEqual(t, profile.Age, 0)
		assert.Greater(t, profile.AnnualIncome, float64(0))
		assert.Greater(t, profile.Assets, float64(0))
	}
}

func TestResolveRiskUnknownCustomerGetsBalancedDefault(t *testing.T) {
	r := NewResolver()

	risk := r.ResolveRisk("0000000000000000000000000000000A")

	assert.Equal(t, domain.RiskMedium, risk.OverallRisk)
	assert.Equal(t, "balanced", risk.PreferenceType)
	assert.Equal(t, 50, risk.RiskScore)
}

func TestResolveRiskKnownCustomer(t *testing.T) {
	r := NewResolver()

	risk := r.ResolveRisk("9307AC85C179D8E388DC776DB6283534")

	assert.Equal(t, domain.RiskHigh, risk.OverallRisk)
	assert.Equal(t, 85, risk.RiskScore)
}

func TestAgeFromBirth(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 24, ageFromBirth(2000, 1, now))
	assert.Equal(t, 23, ageFromBirth(2000, 7, now))
	assert.Equal(t, 24, ageFromBirth(2000, 6, now))
}

func TestAnalysisPoolCoversDemoPoolAndKnownCustomers(t *testing.T) {
	pool := AnalysisPool()

	require.GreaterOrEqual(t, len(pool), len(RandomPool))

	for _, custNo := range RandomPool {
		assert.Contains(t, pool, custNo)
	}
	for custNo := range knownCustomers {
		assert.Contains(t, pool, custNo)
	}

	seen := make(map[string]bool, len(pool))
	for _, custNo := range pool {
		assert.False(t, seen[custNo], "duplicate pool entry %s", custNo)
		seen[custNo] = true
	}
}

func TestDescribeMentionsAgeAndHighValue(t *testing.T) {
	r := NewResolver()

	desc := r.Describe("CDB91DCCE198B10A522FE2AABF6A8D81")

	assert.Contains(t, desc, "82-year-old")
	assert.Contains(t, desc, "high net worth")
}
