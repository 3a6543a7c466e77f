package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trapham24065/api-contact-book/internal/models"
)

func testUser() *models.User {
	return &models.User{
		UserID: 42,
		Name:   "Alice",
		Email:  "alice@example.com",
		Role:   models.RoleStandard,
		Status: models.UserStatusActive,
	}
}

func TestIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 60)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, models.RoleStandard, claims.Role)
}

func TestParseExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 60)
	issuer.ttl = -time.Minute

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTamperedToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 60)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = issuer.Parse(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 60)
	other := NewTokenIssuer("other-secret", 60)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseMalformedToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 60)

	for _, input := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.Parse(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

// Tokens signed with an asymmetric algorithm must not pass the HMAC check.
func TestParseRejectsNonHMACAlgorithm(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 60)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
	})
	token, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTTLMinutes(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 120)
	assert.Equal(t, 120, issuer.TTLMinutes())
}

func TestClaimsUserIDNonNumericSubject(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-number"}}
	_, err := claims.UserID()
	assert.ErrorIs(t, err, ErrInvalidToken)
}
