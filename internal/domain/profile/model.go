package profile

import "time"

// Achievement is a single accolade shown on the profile card.
type Achievement struct {
	Icon string `json:"icon"` // icon tag, e.g. "trophy", "star"
	Text string `json:"text"`
}

// Agent is one entry in the player's agent pool.
type Agent struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// SocialLinks holds the player's public handles.
type SocialLinks struct {
	Twitch    string `json:"twitch"`
	Discord   string `json:"discord"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Email     string `json:"email"`
}

// Profile is the singleton player identity record. Stats are display
// strings, not numbers — the site never aggregates them.
// INVARIANT: at most one profile exists in the store at any time.
type Profile struct {
	Name       string `json:"name"`
	GameID     string `json:"gameId"`
	Team       string `json:"team"`
	City       string `json:"city"`
	Role       string `json:"role"`
	Rank       string `json:"rank"`
	MVPTitle   string `json:"mvpTitle"`
	KD         string `json:"kd"`
	HS         string `json:"hs"`
	ACS        string `json:"acs"`
	ADR        string `json:"adr"`
	ClutchRate string `json:"clutchRate"`
	Bio        string `json:"bio"`

	Achievements []Achievement `json:"achievements"`
	Agents       []Agent       `json:"agents"`
	SocialLinks  SocialLinks   `json:"socialLinks"`
	TeamLogo     string        `json:"teamLogo"`

	// Section visibility flags live on the profile, not in settings.
	ShowTeamSection    bool `json:"showTeamSection"`
	ShowDuoSection     bool `json:"showDuoSection"`
	ShowGallerySection bool `json:"showGallerySection"`
	ShowVideosSection  bool `json:"showVideosSection"`
	ShowEventsSection  bool `json:"showEventsSection"`

	ProfileTitle       string   `json:"profileTitle"`
	ProfileSubtitle    string   `json:"profileSubtitle"`
	ProfileDescription string   `json:"profileDescription"`
	ProfileSkills      []string `json:"profileSkills"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsZero reports whether the profile carries no identity at all, which is
// how the API distinguishes "no profile yet" from a stored one.
func (p Profile) IsZero() bool {
	return p.Name == "" && p.GameID == "" && p.Team == ""
}

// Default returns the hard-coded profile used when neither the content
// store nor the local mirror has anything.
func Default() Profile {
	return Profile{
		Name:       "PLAYERNAME",
		GameID:     "PLAYERNAME#TAG",
		Team:       "Team FRAG",
		City:       "Monterrey, MX",
		Role:       "Duelist / Flex",
		Rank:       "Diamond 3",
		MVPTitle:   "S6 MVP",
		KD:         "1.38",
		HS:         "26%",
		ACS:        "262",
		ADR:        "145",
		ClutchRate: "34%",
		Bio:        "Professional VALORANT player specialising in entry frags and tactical leadership. Tournament experience and open to professional collaborations.",
		Achievements: []Achievement{
			{Icon: "trophy", Text: "LATAM Tournament Champion 2024"},
			{Icon: "star", Text: "Regional League MVP S6"},
			{Icon: "shield", Text: "Radiant Top 500 LATAM"},
			{Icon: "play", Text: "50+ recorded ACEs"},
		},
		Agents: []Agent{
			{Name: "Jett", Role: "Duelist"},
			{Name: "Reyna", Role: "Duelist"},
			{Name: "Raze", Role: "Duelist"},
			{Name: "Phoenix", Role: "Duelist"},
			{Name: "Skye", Role: "Initiator"},
		},
		SocialLinks: SocialLinks{
			Twitch:    "/playername",
			Discord:   "abcd1234",
			Twitter:   "@playername",
			Instagram: "@playername",
			Email:     "contact@playername.com",
		},
		TeamLogo:           "https://images.unsplash.com/photo-1614680376573-df3480f0c6ff?w=200",
		ShowTeamSection:    true,
		ShowDuoSection:     true,
		ShowGallerySection: true,
		ShowVideosSection:  true,
		ShowEventsSection:  true,
		ProfileTitle:       "Professional Profile",
		ProfileSubtitle:    "My playstyle, strengths and competitive experience.",
		ProfileDescription: "Aggressive duelist focused on clean openings and space control, adapting between Phoenix, Reyna, Jett and Raze as the composition demands.",
		ProfileSkills: []string{
			"Tactical mid-round calling and rotation reads",
			"Daily aim routines in Kovaak and Aimlabs",
			"Clear comms and composure in clutch situations",
			"Demo review and constant adaptation to the meta",
		},
	}
}
