package customer

import (
	"fmt"
	"hash/fnv"
	"lingxi/domain"
	"time"
)

// Resolver maps opaque customer numbers to demographic and risk profiles.
// A small allow-list of known customers resolves to literal records; every
// other identifier resolves to a synthetic profile derived purely from a hash
// of the identifier, so the same customer number always yields the same
// profile. Resolution never fails.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

var locationCodes = []string{"BJ", "SH", "GZ", "SZ", "HZ", "NJ", "CD", "WH", "XA", "TJ"}

var educationTiers = []string{"high_school", "associate", "bachelor", "master", "phd"}

var maritalTiers = []string{"single", "married", "divorced", "widowed"}

// profileSeed folds the customer number into a stable integer seed.
func profileSeed(custNo string) uint64 {
	h := fnv.New32a()
	h.Write([]byte(custNo))
	return uint64(h.Sum32())
}

func ageFromBirth(birthYear, birthMonth int, now time.Time) int {
	age := now.Year() - birthYear
	if int(now.Month()) < birthMonth {
		age--
	}
	return age
}

// Resolve returns the profile for a customer number.
func (r *Resolver) Resolve(custNo string) domain.CustomerProfile {
	if profile, ok := knownCustomers[custNo]; ok {
		return profile
	}
	return syntheticProfile(custNo, time.Now())
}

// ResolveRisk returns the risk appetite for a customer number. Unknown
// customers get the fixed balanced default rather than a hash derivation;
// that asymmetry with Resolve is intentional and relied upon.
func (r *Resolver) ResolveRisk(custNo string) domain.RiskProfile {
	if risk, ok := knownRiskProfiles[custNo]; ok {
		return risk
	}
	return domain.RiskProfile{
		OverallRisk:          domain.RiskMedium,
		InvestmentExperience: "medium",
		PreferenceType:       "balanced",
		RiskScore:            50,
	}
}

// Describe renders a one-line summary used by the random customer listing.
func (r *Resolver) Describe(custNo string) string {
	profile := r.Resolve(custNo)

	gender := "male"
	if profile.Gender == "F" {
		gender = "female"
	}
	suffix := ""
	if profile.IsHighValue {
		suffix = ", high net worth"
	}
	return fmt.Sprintf("%d-year-old %s%s", profile.Age, gender, suffix)
}

func syntheticProfile(custNo string, now time.Time) domain.CustomerProfile {
	seed := profileSeed(custNo)

	birthYear := 1930 + int(seed%76)
	birthMonth := int(seed%12) + 1

	gender := "M"
	if seed%2 == 1 {
		gender = "F"
	}

	initYear := 2000 + int((seed*2)%24)
	initMonth := int(seed%12) + 1
	initDay := int(seed%28) + 1

	isHighValue := seed%3 == 0

	// Amounts are seed-derived as well; the original prototype randomized
	// them, which broke resolve-twice determinism.
	var annualIncome, assets float64
	if isHighValue {
		annualIncome = 300000 + float64(seed%500000)
		assets = 2000000 + float64(seed%3000000)
	} else {
		annualIncome = 100000 + float64(seed%200000)
		assets = 500000 + float64(seed%1000000)
	}

	return domain.CustomerProfile{
		CustNo:        custNo,
		BirthYM:       fmt.Sprintf("%04d%02d", birthYear, birthMonth),
		Age:           ageFromBirth(birthYear, birthMonth, now),
		LocationCode:  locationCodes[seed%uint64(len(locationCodes))],
		Gender:        gender,
		Education:     educationTiers[seed%uint64(len(educationTiers))],
		MaritalStatus: maritalTiers[seed%uint64(len(maritalTiers))],
		AccountOpened: fmt.Sprintf("%04d-%02d-%02d", initYear, initMonth, initDay),
		IsHighValue:   isHighValue,
		AnnualIncome:  annualIncome,
		Assets:        assets,
	}
}
