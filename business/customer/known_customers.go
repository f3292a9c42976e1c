package customer

import (
	"sort"

	"lingxi/domain"
)

// Literal records for the demo customer numbers carried over from the
// competition dataset. Everything else goes through syntheticProfile.
var knownCustomers = map[string]domain.CustomerProfile{
	"CDB91DCCE198B10A522FE2AABF6A8D81": {
		CustNo:        "CDB91DCCE198B10A522FE2AABF6A8D81",
		BirthYM:       "194203",
		Age:           82,
		LocationCode:  "L001",
		Gender:        "M",
		Education:     "bachelor",
		MaritalStatus: "married",
		AccountOpened: "2011-03-01",
		IsHighValue:   true,
		AnnualIncome:  500000,
		Assets:        5000000,
	},
	"9307AC85C179D8E388DC776DB6283534": {
		CustNo:        "9307AC85C179D8E388DC776DB6283534",
		BirthYM:       "198608",
		Age:           38,
		LocationCode:  "L001",
		Gender:        "F",
		Education:     "master",
		MaritalStatus: "single",
		AccountOpened: "2010-12-14",
		IsHighValue:   true,
		AnnualIncome:  800000,
		Assets:        2000000,
	},
	"9FA3282573CEB37A5E9BC1C38088087F": {
		CustNo:        "9FA3282573CEB37A5E9BC1C38088087F",
		BirthYM:       "195011",
		Age:           74,
		LocationCode:  "L001",
		Gender:        "M",
		Education:     "bachelor",
		MaritalStatus: "married",
		AccountOpened: "2010-07-24",
		IsHighValue:   true,
		AnnualIncome:  300000,
		Assets:        3000000,
	},
	"CB0D6827A924C7FFDD9DD57BF5CE9358": {
		CustNo:        "CB0D6827A924C7FFDD9DD57BF5CE9358",
		BirthYM:       "195108",
		Age:           73,
		LocationCode:  "L001",
		Gender:        "F",
		Education:     "associate",
		MaritalStatus: "married",
		AccountOpened: "2011-09-16",
		IsHighValue:   false,
		AnnualIncome:  150000,
		Assets:        1000000,
	},
	"797E3448CF516A52ADBE6DB33626B50E": {
		CustNo:        "797E3448CF516A52ADBE6DB33626B50E",
		BirthYM:       "195705",
		Age:           67,
		LocationCode:  "L001",
		Gender:        "M",
		Education:     "bachelor",
		MaritalStatus: "married",
		AccountOpened: "2011-10-17",
		IsHighValue:   true,
		AnnualIncome:  400000,
		Assets:        4000000,
	},
	"A114ADFC907F29C34A8BA48281E4AD45": {
		CustNo:        "A114ADFC907F29C34A8BA48281E4AD45",
		BirthYM:       "195202",
		Age:           72,
		LocationCode:  "L001",
		Gender:        "M",
		Education:     "bachelor",
		MaritalStatus: "married",
		AccountOpened: "2011-10-20",
		IsHighValue:   false,
		AnnualIncome:  180000,
		Assets:        1200000,
	},
	"04CC18A6DCD8144662FA19FEAE9960B9": {
		CustNo:        "04CC18A6DCD8144662FA19FEAE9960B9",
		BirthYM:       "200008",
		Age:           24,
		LocationCode:  "L001",
		Gender:        "F",
		Education:     "bachelor",
		MaritalStatus: "single",
		AccountOpened: "2011-10-29",
		IsHighValue:   false,
		AnnualIncome:  100000,
		Assets:        500000,
	},
	"8D47845ACED49A3AE66589B242E7AA1C": {
		CustNo:        "8D47845ACED49A3AE66589B242E7AA1C",
		BirthYM:       "195002",
		Age:           74,
		LocationCode:  "L001",
		Gender:        "F",
		Education:     "associate",
		MaritalStatus: "married",
		AccountOpened: "2012-02-21",
		IsHighValue:   false,
		AnnualIncome:  160000,
		Assets:        800000,
	},
	"F703017F9CFE9DE0030A625D8B5AB6B6": {
		CustNo:        "F703017F9CFE9DE0030A625D8B5AB6B6",
		BirthYM:       "195307",
		Age:           71,
		LocationCode:  "L001",
		Gender:        "M",
		Education:     "bachelor",
		MaritalStatus: "married",
		AccountOpened: "2012-04-27",
		IsHighValue:   false,
		AnnualIncome:  200000,
		Assets:        1500000,
	},
	"B410B156F2DF76F5B453E4C3AF6D5F1D": {
		CustNo:        "B410B156F2DF76F5B453E4C3AF6D5F1D",
		BirthYM:       "197505",
		Age:           49,
		LocationCode:  "L001",
		Gender:        "M",
		Education:     "master",
		MaritalStatus: "married",
		AccountOpened: "2012-05-15",
		IsHighValue:   true,
		AnnualIncome:  600000,
		Assets:        3500000,
	},
	"6F17029E3C7355E0AAC5605CA485373C": {
		CustNo:        "6F17029E3C7355E0AAC5605CA485373C",
		BirthYM:       "199012",
		Age:           33,
		LocationCode:  "L001",
		Gender:        "F",
		Education:     "bachelor",
		MaritalStatus: "married",
		AccountOpened: "2013-01-10",
		IsHighValue:   false,
		AnnualIncome:  250000,
		Assets:        1000000,
	},
}

var knownRiskProfiles = map[string]domain.RiskProfile{
	"CDB91DCCE198B10A522FE2AABF6A8D81": {
		OverallRisk:          domain.RiskLow,
		InvestmentExperience: "high",
		PreferenceType:       "conservative",
		RiskScore:            20,
	},
	"9307AC85C179D8E388DC776DB6283534": {
		OverallRisk:          domain.RiskHigh,
		InvestmentExperience: "medium",
		PreferenceType:       "aggressive",
		RiskScore:            85,
	},
	"9FA3282573CEB37A5E9BC1C38088087F": {
		OverallRisk:          domain.RiskMedium,
		InvestmentExperience: "medium",
		PreferenceType:       "balanced",
		RiskScore:            60,
	},
	"CB0D6827A924C7FFDD9DD57BF5CE9358": {
		OverallRisk:          domain.RiskLow,
		InvestmentExperience: "high",
		PreferenceType:       "conservative",
		RiskScore:            30,
	},
	"797E3448CF516A52ADBE6DB33626B50E": {
		OverallRisk:          domain.RiskMedium,
		InvestmentExperience: "high",
		PreferenceType:       "balanced",
		RiskScore:            65,
	},
}

// RandomPool is the fixed set of customer numbers offered by the demo
// listing endpoint.
var RandomPool = []string{
	"A114ADFC907F29C34A8BA48281E4AD45",
	"04CC18A6DCD8144662FA19FEAE9960B9",
	"8D47845ACED49A3AE66589B242E7AA1C",
	"F703017F9CFE9DE0030A625D8B5AB6B6",
	"B410B156F2DF76F5B453E4C3AF6D5F1D",
	"6F17029E3C7355E0AAC5605CA485373C",
	"9EEBFD698B873042D9EF0428257C5B66",
	"9BFFF0B05FF358B350DB318444408AE0",
	"E04F5B7F68DED72DB2C36DEFCBC7E397",
	"24EB9244130C6A01D8DAD367C7D4A9D8",
	"352FD62C98887F80486EAFB70585C033",
	"70A454AA56F643A7F90086215EF6D7CD",
	"A2AA2658DC46E1989D21051D250393C9",
	"936FD1979532672C7A8D2F2E88515169",
	"8B9C7A5D3F7E2C1B0A9D8E7F6C5B4A3D",
}

// AnalysisPool returns the candidate customer numbers used when matching a
// product draft against the customer base: the demo pool plus every known
// customer, in a stable order.
func AnalysisPool() []string {
	known := make([]string, 0, len(knownCustomers))
	for custNo := range knownCustomers {
		known = append(known, custNo)
	}
	sort.Strings(known)

	out := make([]string, 0, len(RandomPool)+len(known))
	out = append(out, RandomPool...)
	for _, custNo := range known {
		seen := false
		for _, existing := range RandomPool {
			if existing == custNo {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, custNo)
		}
	}
	return out
}
