package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/trapham24065/api-contact-book/internal/models"
)

// ErrInvalidToken covers tampered signatures, expired tokens and malformed
// payloads uniformly; callers must not distinguish the cause.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims asserts user identity (subject = user id) plus a role claim.
type Claims struct {
	jwt.RegisteredClaims
	Role models.UserRole `json:"role"`
}

// TokenIssuer issues and validates stateless bearer session tokens signed
// with a server-held secret. There is no revocation list: revocation happens
// indirectly through account status and API key state, both checked on every
// gated request.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer builds an issuer. ttlMinutes is the configured token
// lifetime in minutes.
func NewTokenIssuer(secret string, ttlMinutes int) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}
}

// TTLMinutes returns the configured lifetime in minutes. Login responses
// report expires_in as TTLMinutes() * 60.
func (i *TokenIssuer) TTLMinutes() int {
	return int(i.ttl / time.Minute)
}

// Issue signs a token for the user with the configured lifetime.
func (i *TokenIssuer) Issue(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.UserID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Role: user.Role,
	})

	return token.SignedString(i.secret)
}

// Parse validates the token and returns its claims. Any failure surfaces as
// ErrInvalidToken.
func (i *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// UserID extracts the numeric subject from the claims.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
