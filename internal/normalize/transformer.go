package normalize

import (
	"go.uber.org/zap"

	"github.com/liftwatch/meet-sync/internal/listing"
	"github.com/liftwatch/meet-sync/internal/meet"
)

// Transformer turns raw upstream listings into canonical meet records.
type Transformer struct {
	logger *zap.Logger
}

// NewTransformer builds a Transformer logging through the given logger.
func NewTransformer(logger *zap.Logger) *Transformer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Transformer{logger: logger}
}

// Transform converts one raw listing into a canonical record. The second
// return value is false when the listing's date range failed to parse, in
// which case the record is excluded from the sync.
func (t *Transformer) Transform(l listing.Raw) (meet.Record, bool) {
	addr := ParseAddress(l.Address, t.logger)

	dates, ok := ParseDateRange(l.Subtitle)
	if !ok {
		t.logger.Warn("listing excluded: date range did not parse",
			zap.String("listing_id", l.ID),
			zap.String("name", l.Name),
			zap.String("subtitle", l.Subtitle),
		)
		return meet.Record{}, false
	}

	venueName := addr.VenueName
	if venueName == "" {
		venueName = l.Name
	}

	return meet.Record{
		Name:        l.Name,
		VenueName:   venueName,
		VenueStreet: addr.Street,
		VenueCity:   addr.City,
		VenueState:  AbbreviateState(addr.State),
		VenueZip:    addr.Zip,
		TimeZone:    TimeZoneForState(addr.State),
		StartDate:   dates.Start,
		EndDate:     dates.End,
		Status:      meet.StatusUpcoming,
		ExternalID:  l.ID,
	}, true
}

// TransformAll converts a listing collection, dropping listings whose dates
// failed to parse and logging the drop count.
func (t *Transformer) TransformAll(listings []listing.Raw) []meet.Record {
	records := make([]meet.Record, 0, len(listings))
	for _, l := range listings {
		rec, ok := t.Transform(l)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	if dropped := len(listings) - len(records); dropped > 0 {
		t.logger.Info("listings dropped during transform",
			zap.Int("dropped", dropped),
			zap.Int("kept", len(records)),
		)
	}
	return records
}
