package settings

import "time"

// Settings is the singleton site-settings record.
type Settings struct {
	IsDarkMode bool      `json:"isDarkMode"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Default returns the fallback settings (light mode).
func Default() Settings {
	return Settings{}
}
