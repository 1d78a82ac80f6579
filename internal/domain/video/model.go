package video

import "time"

// Highlight is one embedded highlight video. List writes are full
// replacements, same as the gallery.
type Highlight struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Default returns the fallback highlight list.
func Default() []Highlight {
	return []Highlight{
		{ID: "1", Title: "Perfect ACE on Ascent", URL: "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{ID: "2", Title: "1v4 Clutch on Bind", URL: "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{ID: "3", Title: "Explosive Entry on Split", URL: "https://www.youtube.com/embed/dQw4w9WgXcQ"},
	}
}
