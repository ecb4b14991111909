// Package auth implements credential hashing and the two identity-proof
// strategies (signed token, server session) behind a single Strategy
// interface selected at boot.
package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/memberhub/members-api/internal/api/metrics"
)

// DefaultBcryptCost balances login latency against brute-force resistance.
const DefaultBcryptCost = 10

// PasswordHasher wraps bcrypt with a configured cost factor.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given cost, clamped to the
// range bcrypt accepts. Cost <= 0 selects DefaultBcryptCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash produces a salted one-way hash of the plaintext.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	start := time.Now()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	metrics.PasswordHashDuration.WithLabelValues("hash").Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext matches the stored hash. A malformed
// hash verifies as false rather than surfacing an error.
func (h *PasswordHasher) Verify(plain, hash string) bool {
	start := time.Now()
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	metrics.PasswordHashDuration.WithLabelValues("verify").Observe(time.Since(start).Seconds())
	return err == nil
}
