package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenExpired = errors.New("token expired")
var ErrTokenSignature = errors.New("token signature invalid")
var ErrTokenMalformed = errors.New("token malformed")

// Claims is the payload carried by every access token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HMAC-SHA256 signed access tokens. The
// secret and TTL are fixed at construction; nothing here is mutated at
// runtime.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

const DefaultTokenTTL = 24 * time.Hour

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the lifetime applied to issued tokens.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a signed token for the given subject and role, expiring
// after the manager's TTL.
func (m *TokenManager) Issue(subject, role string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a token string. The signature is checked before
// any claim is interpreted, and the signing algorithm is pinned to HS256 so a
// token re-signed with "none" or an asymmetric scheme is rejected outright.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
