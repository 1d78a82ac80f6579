package credential

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Length is the generated password length.
const Length = 12

// TTL is how long a generated password stays valid.
const TTL = 24 * time.Hour

const (
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lower   = "abcdefghijklmnopqrstuvwxyz"
	digits  = "0123456789"
	symbols = "!@#$%^&*"
	charset = upper + lower + digits + symbols
)

// Credential is the single shared admin secret. The plaintext is held for
// the validity window; validation is an exact, case-sensitive comparison.
// INVARIANT: at most one credential exists at a time.
type Credential struct {
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Generate produces a new credential valid for TTL from now. The password
// contains at least one character from each of the four classes, with the
// remainder drawn from the full charset, then shuffled.
func Generate(now time.Time) (Credential, error) {
	chars := make([]byte, 0, Length)
	for _, class := range []string{upper, lower, digits, symbols} {
		c, err := pick(class)
		if err != nil {
			return Credential{}, err
		}
		chars = append(chars, c)
	}
	for len(chars) < Length {
		c, err := pick(charset)
		if err != nil {
			return Credential{}, err
		}
		chars = append(chars, c)
	}
	if err := shuffle(chars); err != nil {
		return Credential{}, err
	}

	return Credential{
		Password:  string(chars),
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}, nil
}

// pick returns one random character from the given class.
func pick(class string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(class))))
	if err != nil {
		return 0, fmt.Errorf("generating password: %w", err)
	}
	return class[n.Int64()], nil
}

// shuffle is a Fisher-Yates shuffle over crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("shuffling password: %w", err)
		}
		j := n.Int64()
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// Expired reports whether the credential is past its expiry at the given
// wall-clock time. Expiry is exclusive: the credential is still valid at
// exactly ExpiresAt.
func (c Credential) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// Matches reports whether candidate equals the stored password exactly.
func (c Credential) Matches(candidate string) bool {
	return c.Password != "" && c.Password == candidate
}

// Remaining returns the time left before expiry, clamped at zero.
func (c Credential) Remaining(now time.Time) time.Duration {
	d := c.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// FormatRemaining renders the remaining validity as "XhYm".
func (c Credential) FormatRemaining(now time.Time) string {
	d := c.Remaining(now)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
