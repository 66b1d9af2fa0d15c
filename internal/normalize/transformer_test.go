package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/liftwatch/meet-sync/internal/listing"
	"github.com/liftwatch/meet-sync/internal/meet"
)

func TestTransformFullListing(t *testing.T) {
	t.Parallel()

	tr := NewTransformer(zap.NewNop())
	rec, ok := tr.Transform(listing.Raw{
		ID:       "evt-42",
		Name:     "Summer Throwdown",
		Address:  "CrossFit Revamped, 9385 Washington Blvd., Suite B-C, Laurel, Maryland, United States of America, 20723",
		Subtitle: `06\/08\/2025 - 06\/09\/2025`,
	})

	require.True(t, ok)
	assert.Equal(t, meet.Record{
		Name:        "Summer Throwdown",
		VenueName:   "CrossFit Revamped",
		VenueStreet: "9385 Washington Blvd., Suite B-C",
		VenueCity:   "Laurel",
		VenueState:  "MD",
		VenueZip:    "20723",
		TimeZone:    "America/New_York",
		StartDate:   "2025-06-08",
		EndDate:     "2025-06-09",
		Status:      meet.StatusUpcoming,
		ExternalID:  "evt-42",
	}, rec)
}

func TestTransformVenueNameFallsBackToListingName(t *testing.T) {
	t.Parallel()

	tr := NewTransformer(zap.NewNop())
	rec, ok := tr.Transform(listing.Raw{
		ID:       "evt-7",
		Name:     "Pleasanton Open",
		Address:  "7051 Commerce Circle, Pleasanton, California, United States of America, 94588",
		Subtitle: "09/20/2025",
	})

	require.True(t, ok)
	assert.Equal(t, "Pleasanton Open", rec.VenueName)
	assert.Equal(t, "CA", rec.VenueState)
	assert.Equal(t, "America/Los_Angeles", rec.TimeZone)
	assert.Equal(t, rec.StartDate, rec.EndDate)
}

func TestTransformDegradedAddressStillProducesRecord(t *testing.T) {
	t.Parallel()

	tr := NewTransformer(zap.NewNop())
	rec, ok := tr.Transform(listing.Raw{
		ID:       "evt-9",
		Name:     "Mystery Meet",
		Address:  "Somewhere",
		Subtitle: "10/11/2025",
	})

	require.True(t, ok)
	assert.Equal(t, "Mystery Meet", rec.VenueName)
	assert.Equal(t, "Somewhere", rec.VenueStreet)
	assert.Equal(t, "Unknown", rec.VenueCity)
	// Unrecognized state passes through unchanged, never empty.
	assert.Equal(t, "Unknown", rec.VenueState)
	assert.Equal(t, DefaultTimeZone, rec.TimeZone)
}

func TestTransformAllDropsUnparseableDates(t *testing.T) {
	t.Parallel()

	tr := NewTransformer(zap.NewNop())
	records := tr.TransformAll([]listing.Raw{
		{ID: "1", Name: "Good", Address: "1 A St, Austin, Texas, United States of America, 73301", Subtitle: "05/01/2025"},
		{ID: "2", Name: "Bad dates", Address: "2 B St, Austin, Texas, United States of America, 73301", Subtitle: "TBA"},
		{ID: "3", Name: "Also good", Address: "3 C St, Austin, Texas, United States of America, 73301", Subtitle: "05/02/2025 - 05/03/2025"},
	})

	require.Len(t, records, 2)
	assert.Equal(t, "Good", records[0].Name)
	assert.Equal(t, "Also good", records[1].Name)
	for _, rec := range records {
		assert.NotEmpty(t, rec.StartDate)
		assert.NotEmpty(t, rec.EndDate)
		assert.Equal(t, meet.StatusUpcoming, rec.Status)
	}
}
