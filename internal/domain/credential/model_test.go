package credential

import (
	"strings"
	"testing"
	"time"
)

// TestGenerate_Shape tests length and required character classes.
func TestGenerate_Shape(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	c, err := Generate(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Password) != Length {
		t.Errorf("got length %d, want %d", len(c.Password), Length)
	}
	for _, class := range []string{upper, lower, digits, symbols} {
		if !strings.ContainsAny(c.Password, class) {
			t.Errorf("password %q missing a character from %q", c.Password, class)
		}
	}
	for _, r := range c.Password {
		if !strings.ContainsRune(charset, r) {
			t.Errorf("password contains %q, outside the charset", r)
		}
	}
}

// TestGenerate_Expiry tests that the window is exactly TTL from creation.
func TestGenerate_Expiry(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	c, err := Generate(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.ExpiresAt.Equal(now.Add(TTL)) {
		t.Errorf("got expiry %v, want %v", c.ExpiresAt, now.Add(TTL))
	}
}

// TestExpired_Boundary tests validity just inside and just outside the
// 24-hour window.
func TestExpired_Boundary(t *testing.T) {
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	c := Credential{Password: "x", CreatedAt: created, ExpiresAt: created.Add(TTL)}

	if c.Expired(created.Add(23*time.Hour + 59*time.Minute)) {
		t.Error("credential should still be valid at T+23h59m")
	}
	if !c.Expired(created.Add(24*time.Hour + 1*time.Minute)) {
		t.Error("credential should be expired at T+24h01m")
	}
}

// TestMatches tests the exact, case-sensitive comparison.
func TestMatches(t *testing.T) {
	c := Credential{Password: "Abc123!@xyZQ"}
	if !c.Matches("Abc123!@xyZQ") {
		t.Error("exact match should validate")
	}
	if c.Matches("abc123!@xyzq") {
		t.Error("case-insensitive match must not validate")
	}
	if c.Matches("") {
		t.Error("empty candidate must not validate")
	}
	if (Credential{}).Matches("") {
		t.Error("empty credential must never validate")
	}
}

// TestFormatRemaining tests the "XhYm" rendering.
func TestFormatRemaining(t *testing.T) {
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	c := Credential{ExpiresAt: created.Add(TTL)}

	if got := c.FormatRemaining(created.Add(30 * time.Minute)); got != "23h 30m" {
		t.Errorf("got %q, want %q", got, "23h 30m")
	}
	if got := c.FormatRemaining(created.Add(25 * time.Hour)); got != "0h 0m" {
		t.Errorf("got %q, want %q", got, "0h 0m")
	}
}

// TestGenerate_Distinct tests that consecutive generations differ.
func TestGenerate_Distinct(t *testing.T) {
	now := time.Now()
	a, err := Generate(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Generate(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Password == b.Password {
		t.Error("expected distinct passwords")
	}
}
