package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParseAddressPlainStreetAddress(t *testing.T) {
	t.Parallel()

	addr := ParseAddress("7051 Commerce Circle, Pleasanton, California, United States of America, 94588", zap.NewNop())

	assert.Empty(t, addr.VenueName)
	assert.Equal(t, "7051 Commerce Circle", addr.Street)
	assert.Equal(t, "Pleasanton", addr.City)
	assert.Equal(t, "California", addr.State)
	assert.Equal(t, "94588", addr.Zip)
}

func TestParseAddressVenueWithSuite(t *testing.T) {
	t.Parallel()

	addr := ParseAddress("CrossFit Revamped, 9385 Washington Blvd., Suite B-C, Laurel, Maryland, United States of America, 20723", zap.NewNop())

	assert.Equal(t, "CrossFit Revamped", addr.VenueName)
	assert.Equal(t, "9385 Washington Blvd., Suite B-C", addr.Street)
	assert.Equal(t, "Laurel", addr.City)
	assert.Equal(t, "Maryland", addr.State)
	assert.Equal(t, "20723", addr.Zip)
}

func TestParseAddressShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want Address
	}{
		{
			name: "venue without suite",
			in:   "Iron Works Gym, 120 Main St, Springfield, Illinois, United States of America, 62701",
			want: Address{
				VenueName: "Iron Works Gym",
				Street:    "120 Main St",
				City:      "Springfield",
				State:     "Illinois",
				Zip:       "62701",
			},
		},
		{
			name: "country token absent",
			in:   "45 Ocean Ave, Santa Cruz, California, 95060",
			want: Address{
				Street: "45 Ocean Ave",
				City:   "Santa Cruz",
				State:  "California",
				Zip:    "95060",
			},
		},
		{
			name: "doubled separator collapsed",
			in:   "88 Elm St, , Denver, Colorado, United States of America, 80202",
			want: Address{
				Street: "88 Elm St",
				City:   "Denver",
				State:  "Colorado",
				Zip:    "80202",
			},
		},
		{
			name: "five-part venue address skips the suite merge",
			in:   "Barbell Club, 77 5th Ave, Brooklyn, New York, 11217",
			want: Address{
				VenueName: "Barbell Club",
				Street:    "77 5th Ave",
				City:      "Brooklyn",
				State:     "New York",
				Zip:       "11217",
			},
		},
		{
			name: "apt line merged into street",
			in:   "The Annex, 300 Pine St, Apt 4, Portland, Oregon, United States of America, 97201",
			want: Address{
				VenueName: "The Annex",
				Street:    "300 Pine St, Apt 4",
				City:      "Portland",
				State:     "Oregon",
				Zip:       "97201",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseAddress(tt.in, zap.NewNop()))
		})
	}
}

func TestParseAddressDegradedFallback(t *testing.T) {
	t.Parallel()

	tests := []string{
		"Main Street Armory",
		"TBD",
		"Online, Virtual",
		"",
	}

	for _, in := range tests {
		addr := ParseAddress(in, zap.NewNop())
		assert.Empty(t, addr.VenueName, "input %q", in)
		assert.Equal(t, in, addr.Street, "input %q", in)
		assert.Equal(t, "Unknown", addr.City, "input %q", in)
		assert.Equal(t, "Unknown", addr.State, "input %q", in)
		assert.Equal(t, "Unknown", addr.Zip, "input %q", in)
	}
}

func TestParseAddressNilLoggerDoesNotPanic(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		ParseAddress("short", nil)
	})
}
