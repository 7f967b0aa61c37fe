package constants

// ARRL/RAC section tables. Built once at init, never mutated.

// ValidSections holds every accepted ARRL and RAC section code. The two
// special tokens MX (Mexico) and DX (rest of world) are accepted by the
// exchange rules but are deliberately not part of this set.
var ValidSections = makeSet(
	// US state sections
	"AL", "AK", "AZ", "AR", "CO", "CT", "DE", "GA", "HI", "ID", "IL", "IN", "IA", "KS",
	"KY", "LA", "ME", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NM", "NC", "ND",
	"OH", "OK", "OR", "RI", "SC", "SD", "TN", "UT", "VT", "WA", "WV", "WI", "WY",

	// Multi-section states
	"EB", "LAX", "ORG", "SB", "SCV", "SF", "SJV", "SV", "PAC", // California
	"WCF", "NFL", "SFL", // Florida
	"MDC",        // Maryland-DC
	"MA", "EMA", // Massachusetts
	"NNJ", "SNJ", // New Jersey
	"NYC", "LI", "NLI", "WNY", // New York
	"EPA", "WPA", // Pennsylvania
	"NTX", "STX", "WTX", // Texas
	"VA", // Virginia

	// General state codes accepted alongside their subdivisions
	"NY", "CA", "TX", "FL", "PA", "NJ",

	// Canadian sections
	"AB", "BC", "MB", "NB", "NL", "NT", "NS", "NU", "ON", "PE", "QC", "SK", "YT",
)

const (
	SectionMexico = "MX"
	SectionDX     = "DX"
)

// Mainland US timezone buckets.
var (
	PacificSections = makeSet(
		"WA", "OR", "NV", "CA", "EB", "LAX", "ORG", "SB", "SCV", "SF", "SJV", "SV", "PAC",
	)

	MountainSections = makeSet(
		"AZ", "CO", "ID", "MT", "NM", "UT", "WY",
	)

	CentralSections = makeSet(
		"AL", "AR", "IL", "IN", "IA", "KS", "KY", "LA", "MN", "MS", "MO", "NE", "ND",
		"OK", "SD", "TN", "TX", "NTX", "STX", "WTX", "WI",
	)

	EasternSections = makeSet(
		"CT", "DE", "FL", "WCF", "NFL", "SFL", "GA", "ME", "MDC", "MA", "EMA", "MI",
		"NH", "NJ", "NNJ", "SNJ", "NY", "NYC", "LI", "NLI", "WNY", "NC", "OH",
		"PA", "EPA", "WPA", "RI", "SC", "VT", "VA", "WV",
	)
)

// CanadianSectionTimezones maps each RAC section to its IANA zone.
var CanadianSectionTimezones = map[string]string{
	"BC": "America/Vancouver",
	"AB": "America/Edmonton",
	"SK": "America/Regina",
	"MB": "America/Winnipeg",
	"ON": "America/Toronto",
	"QC": "America/Montreal",
	"NB": "America/Moncton",
	"NS": "America/Halifax",
	"PE": "America/Halifax",
	"NL": "America/St_Johns",
	"NT": "America/Yellowknife",
	"NU": "America/Iqaluit",
	"YT": "America/Whitehorse",
}

// TimezoneLabels maps IANA zone ids to the short labels shown in the UI.
var TimezoneLabels = map[string]string{
	"America/Los_Angeles": "Pacific",
	"America/Denver":      "Mountain",
	"America/Chicago":     "Central",
	"America/New_York":    "Eastern",
	"America/Anchorage":   "Alaska",
	"Pacific/Honolulu":    "Hawaii",
	"America/Vancouver":   "Pacific",
	"America/Edmonton":    "Mountain",
	"America/Regina":      "Central",
	"America/Winnipeg":    "Central",
	"America/Toronto":     "Eastern",
	"America/Montreal":    "Eastern",
	"America/Moncton":     "Atlantic",
	"America/Halifax":     "Atlantic",
	"America/St_Johns":    "Newfoundland",
	"UTC":                 "UTC",
}

// SectionStates maps US ARRL sections to their state abbreviation for the
// worked-states map. Canadian sections and MX/DX have no entry.
var SectionStates = map[string]string{
	"AL": "AL", "AK": "AK", "AZ": "AZ", "AR": "AR",
	"EB": "CA", "LAX": "CA", "ORG": "CA", "SB": "CA", "SCV": "CA", "SF": "CA", "SJV": "CA", "SV": "CA", "PAC": "CA",
	"CO": "CO", "CT": "CT", "DE": "DE",
	"WCF": "FL", "NFL": "FL", "SFL": "FL",
	"GA": "GA", "HI": "HI", "ID": "ID", "IL": "IL", "IN": "IN", "IA": "IA", "KS": "KS", "KY": "KY",
	"LA": "LA", "ME": "ME", "MDC": "MD", "MA": "MA", "EMA": "MA", "MI": "MI", "MN": "MN",
	"MS": "MS", "MO": "MO", "MT": "MT", "NE": "NE", "NV": "NV", "NH": "NH",
	"NNJ": "NJ", "SNJ": "NJ", "NM": "NM",
	"NYC": "NY", "LI": "NY", "NLI": "NY", "WNY": "NY",
	"NC": "NC", "ND": "ND", "OH": "OH", "OK": "OK", "OR": "OR",
	"EPA": "PA", "WPA": "PA",
	"RI": "RI", "SC": "SC", "SD": "SD", "TN": "TN",
	"NTX": "TX", "STX": "TX", "WTX": "TX",
	"UT": "UT", "VT": "VT", "VA": "VA", "WA": "WA", "WV": "WV", "WI": "WI", "WY": "WY",
}

func makeSet(keys ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return m
}
