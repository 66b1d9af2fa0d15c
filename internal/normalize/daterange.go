package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

// DateRange holds the ISO start and end dates parsed from a listing
// subtitle. Both fields are set together or not at all.
type DateRange struct {
	Start string
	End   string
}

// ParseDateRange decomposes a textual date range such as
// "06\/08\/2025 - 06\/08\/2025" into ISO start/end dates. A single date with
// no " - " separator is treated as a one-day range. The second return value
// is false when either token is malformed.
//
// Dates are reassembled positionally from month/day/year into
// year-month-day; there is deliberately no calendar validity check, so a
// numeric month of 13 produces a well-formed but semantically invalid ISO
// string. Rejecting those here would silently change sync behavior.
func ParseDateRange(raw string) (DateRange, bool) {
	unescaped := strings.ReplaceAll(raw, `\/`, "/")
	tokens := strings.Split(unescaped, " - ")

	start, ok := parseDateToken(tokens[0])
	if !ok {
		return DateRange{}, false
	}

	end := start
	if len(tokens) > 1 {
		end, ok = parseDateToken(tokens[1])
		if !ok {
			return DateRange{}, false
		}
	}

	return DateRange{Start: start, End: end}, true
}

// parseDateToken converts one "MM/DD/YYYY" token into "YYYY-MM-DD".
func parseDateToken(token string) (string, bool) {
	fields := strings.Split(strings.TrimSpace(token), "/")
	if len(fields) != 3 {
		return "", false
	}

	month, err := strconv.Atoi(fields[0])
	if err != nil {
		return "", false
	}
	day, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return "", false
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}
