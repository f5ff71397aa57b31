package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns plaintext passwords into salted bcrypt hashes. Passwords are
// pre-digested with SHA-256 so inputs longer than bcrypt's 72-byte limit
// still hash in full rather than being silently truncated.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost factor. Costs outside
// bcrypt's supported range fall back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a bcrypt hash of the password. The salt is generated per call,
// so hashing the same password twice yields different strings.
func (h *Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(predigest(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored hash. Malformed hashes
// simply fail the comparison; Verify never panics and never reveals where the
// inputs diverge (bcrypt's comparison is constant time).
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), predigest(password)) == nil
}

func predigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}
