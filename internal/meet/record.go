// Package meet defines the canonical meet record shared across the sync pipeline.
package meet

// StatusUpcoming is the status assigned to every record at creation time.
// This system only ever creates upcoming meets; status transitions happen
// elsewhere.
const StatusUpcoming = "upcoming"

// Record is the normalized, store-ready representation of one upstream
// listing. All fields are populated by the transformer; none are optional.
type Record struct {
	Name        string
	VenueName   string
	VenueStreet string
	VenueCity   string
	VenueState  string
	VenueZip    string
	TimeZone    string
	StartDate   string
	EndDate     string
	Status      string

	// ExternalID is the upstream listing identifier, carried only for log
	// correlation. It is never persisted.
	ExternalID string
}
