package music

import "time"

// Track is the singleton background-music record. Whether the track is
// currently playing is renderer-local state and is never persisted.
type Track struct {
	URL       string    `json:"url"`
	Volume    float64   `json:"volume"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// APIDefault is what the content API serves when nothing is stored yet.
func APIDefault() Track {
	return Track{Volume: 0.5}
}

// Default is the hard-coded fallback used by the shared state.
func Default() Track {
	return Track{Volume: 0.3}
}
