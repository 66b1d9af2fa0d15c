// Package normalize turns free-text listing fields into structured values.
//
// Address and date-range parsing are heuristics over fixed split points, not
// grammars. Both always return a usable value: malformed input degrades to a
// fully populated fallback instead of an error, so downstream code never has
// to special-case missing attributes.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

const countryToken = "United States of America"

// Address is the structured decomposition of a free-text address. Every
// field is always set; City, State and Zip carry "Unknown" when the input did
// not match any supported shape.
type Address struct {
	VenueName string
	Street    string
	City      string
	State     string
	Zip       string
}

var (
	// Collapses accidental doubled separators ("a, , b" or "a,, b") left by
	// upstream data entry into a single one.
	repeatedSeparators = regexp.MustCompile(`,(\s*,)+`)

	// Secondary address lines that belong on the street rather than being
	// mistaken for a city.
	unitDesignator = regexp.MustCompile(`(?i)^(suite|unit|apt|#)`)
)

// ParseAddress decomposes a free-text US address into venue, street, city,
// state and zip. It never fails: input that does not match any supported
// shape yields a degraded Address with the original string as the street and
// "Unknown" placeholders, logged as a diagnostic.
func ParseAddress(raw string, logger *zap.Logger) Address {
	if logger == nil {
		logger = zap.NewNop()
	}

	cleaned := repeatedSeparators.ReplaceAllString(raw, ",")
	parts := strings.Split(cleaned, ", ")

	if len(parts) < 4 {
		logger.Warn("address did not match any supported shape",
			zap.String("address", raw),
			zap.Int("parts", len(parts)),
		)
		return degradedAddress(raw)
	}

	addr := Address{
		Zip:   parts[len(parts)-1],
		State: stateFromParts(parts),
	}

	// A leading part that does not start with a digit is a venue name; a
	// digit-led first part is already the street number.
	start := 0
	if !startsWithDigit(parts[0]) {
		addr.VenueName = parts[0]
		start = 1
	}

	if start == 0 {
		addr.Street = parts[0]
		addr.City = parts[1]
		return addr
	}

	addr.Street = parts[1]
	if len(parts) >= 6 && unitDesignator.MatchString(parts[2]) {
		addr.Street = parts[1] + ", " + parts[2]
		addr.City = parts[3]
	} else {
		addr.City = parts[2]
	}
	return addr
}

// stateFromParts locates the state token. When the country token is present
// the state is the part immediately before it; otherwise the country is
// considered absent and the state sits second-to-last, just before the zip.
func stateFromParts(parts []string) string {
	for i, p := range parts {
		if p == countryToken && i > 0 {
			return parts[i-1]
		}
	}
	return parts[len(parts)-2]
}

func startsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}

func degradedAddress(raw string) Address {
	return Address{
		VenueName: "",
		Street:    raw,
		City:      "Unknown",
		State:     "Unknown",
		Zip:       "Unknown",
	}
}
