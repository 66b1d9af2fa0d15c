package normalize

// DefaultTimeZone is used when a state name has no timezone mapping.
// Unrecognized states fall back to Eastern rather than failing the record.
const DefaultTimeZone = "America/New_York"

// stateTimeZones maps full US state names (plus the District of Columbia) to
// the IANA timezone identifier covering the bulk of the state.
var stateTimeZones = map[string]string{
	"Alabama":              "America/Chicago",
	"Alaska":               "America/Anchorage",
	"Arizona":              "America/Phoenix",
	"Arkansas":             "America/Chicago",
	"California":           "America/Los_Angeles",
	"Colorado":             "America/Denver",
	"Connecticut":          "America/New_York",
	"Delaware":             "America/New_York",
	"District of Columbia": "America/New_York",
	"Florida":              "America/New_York",
	"Georgia":              "America/New_York",
	"Hawaii":               "Pacific/Honolulu",
	"Idaho":                "America/Boise",
	"Illinois":             "America/Chicago",
	"Indiana":              "America/Indiana/Indianapolis",
	"Iowa":                 "America/Chicago",
	"Kansas":               "America/Chicago",
	"Kentucky":             "America/New_York",
	"Louisiana":            "America/Chicago",
	"Maine":                "America/New_York",
	"Maryland":             "America/New_York",
	"Massachusetts":        "America/New_York",
	"Michigan":             "America/Detroit",
	"Minnesota":            "America/Chicago",
	"Mississippi":          "America/Chicago",
	"Missouri":             "America/Chicago",
	"Montana":              "America/Denver",
	"Nebraska":             "America/Chicago",
	"Nevada":               "America/Los_Angeles",
	"New Hampshire":        "America/New_York",
	"New Jersey":           "America/New_York",
	"New Mexico":           "America/Denver",
	"New York":             "America/New_York",
	"North Carolina":       "America/New_York",
	"North Dakota":         "America/Chicago",
	"Ohio":                 "America/New_York",
	"Oklahoma":             "America/Chicago",
	"Oregon":               "America/Los_Angeles",
	"Pennsylvania":         "America/New_York",
	"Rhode Island":         "America/New_York",
	"South Carolina":       "America/New_York",
	"South Dakota":         "America/Chicago",
	"Tennessee":            "America/Chicago",
	"Texas":                "America/Chicago",
	"Utah":                 "America/Denver",
	"Vermont":              "America/New_York",
	"Virginia":             "America/New_York",
	"Washington":           "America/Los_Angeles",
	"West Virginia":        "America/New_York",
	"Wisconsin":            "America/Chicago",
	"Wyoming":              "America/Denver",
}

// stateAbbreviations maps full US state names (plus the District of Columbia)
// to their two-letter postal codes.
var stateAbbreviations = map[string]string{
	"Alabama":              "AL",
	"Alaska":               "AK",
	"Arizona":              "AZ",
	"Arkansas":             "AR",
	"California":           "CA",
	"Colorado":             "CO",
	"Connecticut":          "CT",
	"Delaware":             "DE",
	"District of Columbia": "DC",
	"Florida":              "FL",
	"Georgia":              "GA",
	"Hawaii":               "HI",
	"Idaho":                "ID",
	"Illinois":             "IL",
	"Indiana":              "IN",
	"Iowa":                 "IA",
	"Kansas":               "KS",
	"Kentucky":             "KY",
	"Louisiana":            "LA",
	"Maine":                "ME",
	"Maryland":             "MD",
	"Massachusetts":        "MA",
	"Michigan":             "MI",
	"Minnesota":            "MN",
	"Mississippi":          "MS",
	"Missouri":             "MO",
	"Montana":              "MT",
	"Nebraska":             "NE",
	"Nevada":               "NV",
	"New Hampshire":        "NH",
	"New Jersey":           "NJ",
	"New Mexico":           "NM",
	"New York":             "NY",
	"North Carolina":       "NC",
	"North Dakota":         "ND",
	"Ohio":                 "OH",
	"Oklahoma":             "OK",
	"Oregon":               "OR",
	"Pennsylvania":         "PA",
	"Rhode Island":         "RI",
	"South Carolina":       "SC",
	"South Dakota":         "SD",
	"Tennessee":            "TN",
	"Texas":                "TX",
	"Utah":                 "UT",
	"Vermont":              "VT",
	"Virginia":             "VA",
	"Washington":           "WA",
	"West Virginia":        "WV",
	"Wisconsin":            "WI",
	"Wyoming":              "WY",
}

// TimeZoneForState returns the IANA timezone identifier for a full US state
// name. Unknown names resolve to DefaultTimeZone; this is an explicit
// fallback policy, not an error.
func TimeZoneForState(state string) string {
	if tz, ok := stateTimeZones[state]; ok {
		return tz
	}
	return DefaultTimeZone
}

// AbbreviateState returns the two-letter postal code for a full US state
// name. Unknown names are returned unchanged so downstream rows never carry
// an empty state.
func AbbreviateState(state string) string {
	if abbr, ok := stateAbbreviations[state]; ok {
		return abbr
	}
	return state
}
