package team

import "time"

// SocialLinks holds a roster member's public handles.
type SocialLinks struct {
	Twitch    string `json:"twitch"`
	Discord   string `json:"discord"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
}

// Member is one entry in the ordered team roster. IDs are caller-assigned
// strings; the store preserves them verbatim on every full replace.
type Member struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	GameID      string      `json:"gameId"`
	Role        string      `json:"role"`
	Rank        string      `json:"rank"`
	Photo       string      `json:"photo"`
	SocialLinks SocialLinks `json:"socialLinks"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Default returns the fallback roster.
func Default() []Member {
	return []Member{
		{
			ID: "1", Name: "Player1", GameID: "Player1#TAG", Role: "Duelist", Rank: "Immortal 3",
			Photo:       "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=200",
			SocialLinks: SocialLinks{Twitch: "/player1", Discord: "abcd1111", Twitter: "@player1", Instagram: "@player1"},
		},
		{
			ID: "2", Name: "Player2", GameID: "Player2#TAG", Role: "Controller", Rank: "Radiant",
			Photo:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200",
			SocialLinks: SocialLinks{Twitch: "/player2", Discord: "abcd2222", Twitter: "@player2", Instagram: "@player2"},
		},
		{
			ID: "3", Name: "Player3", GameID: "Player3#TAG", Role: "Initiator", Rank: "Immortal 3",
			Photo:       "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200",
			SocialLinks: SocialLinks{Twitch: "/player3", Discord: "abcd3333", Twitter: "@player3", Instagram: "@player3"},
		},
		{
			ID: "4", Name: "Player4", GameID: "Player4#TAG", Role: "Sentinel", Rank: "Immortal 2",
			Photo:       "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=200",
			SocialLinks: SocialLinks{Twitch: "/player4", Discord: "abcd4444", Twitter: "@player4", Instagram: "@player4"},
		},
	}
}
