// Package listing retrieves raw meet listings from the upstream listing API.
package listing

// Raw is one externally-sourced event entry before normalization. It lives
// only for the duration of a single sync run.
type Raw struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Subtitle string `json:"subtitle"`
}

// envelope is the upstream response shape: a JSON object whose "data" field
// carries the listing collection.
type envelope struct {
	Data []Raw `json:"data"`
}
