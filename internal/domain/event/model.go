package event

import "time"

// Event is one row in the match schedule. Result is empty for upcoming
// matches.
type Event struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // display string, e.g. "15 Dec"
	Vs        string    `json:"vs"`
	Event     string    `json:"event"`
	Map       string    `json:"map"`
	Result    string    `json:"result,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Default returns the fallback match schedule.
func Default() []Event {
	return []Event{
		{ID: "1", Date: "15 Dec", Vs: "Team Liquid", Event: "VCT Champions", Map: "Ascent", Result: "W"},
		{ID: "2", Date: "12 Dec", Vs: "Fnatic", Event: "VCT Champions", Map: "Bind", Result: "L"},
		{ID: "3", Date: "10 Dec", Vs: "LOUD", Event: "VCT Champions", Map: "Haven", Result: "W"},
	}
}
