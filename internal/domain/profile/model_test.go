package profile

import "testing"

// TestDefault_Complete tests that the fallback profile is fully populated.
func TestDefault_Complete(t *testing.T) {
	p := Default()
	if p.IsZero() {
		t.Fatal("default profile must not be zero")
	}
	if len(p.Agents) == 0 || len(p.Achievements) == 0 || len(p.ProfileSkills) == 0 {
		t.Error("default profile missing agents, achievements or skills")
	}
	if !p.ShowTeamSection || !p.ShowDuoSection || !p.ShowGallerySection || !p.ShowVideosSection || !p.ShowEventsSection {
		t.Error("all sections should be visible by default")
	}
}

// TestIsZero tests the empty-record check used by the API layer.
func TestIsZero(t *testing.T) {
	if !(Profile{}).IsZero() {
		t.Error("empty profile should be zero")
	}
	if (Profile{Name: "x"}).IsZero() {
		t.Error("named profile should not be zero")
	}
}
