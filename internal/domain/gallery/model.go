package gallery

import "time"

// Image is one entry in the gallery. Every write replaces the whole
// collection; items absent from a write are gone.
type Image struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Default returns the fallback gallery.
func Default() []Image {
	return []Image{
		{ID: "1", Title: "LATAM Tournament 2024", URL: "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=400"},
		{ID: "2", Title: "Team Photo", URL: "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=400"},
		{ID: "3", Title: "MVP Award", URL: "https://images.unsplash.com/photo-1579952363873-27d3bfad9c0d?w=400"},
		{ID: "4", Title: "Gaming Setup", URL: "https://images.unsplash.com/photo-1593305841991-05c297ba4575?w=400"},
	}
}
