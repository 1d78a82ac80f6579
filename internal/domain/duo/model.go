package duo

import "time"

// Partner is the singleton duo-partner record. The site may have none,
// in which case the API serves an empty object.
type Partner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	GameID    string    `json:"gameId"`
	Role      string    `json:"role"`
	Rank      string    `json:"rank"`
	Photo     string    `json:"photo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsZero reports whether the partner record is empty.
func (p Partner) IsZero() bool {
	return p.Name == "" && p.GameID == ""
}

// Default returns the fallback duo partner used when no stored or
// mirrored record exists.
func Default() *Partner {
	return &Partner{
		ID:     "1",
		Name:   "DuoPartner",
		GameID: "DuoPartner#TAG",
		Role:   "Controller",
		Rank:   "Radiant",
		Photo:  "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=200",
	}
}
