package services

import (
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trapham24065/api-contact-book/internal/apperrors"
	"github.com/trapham24065/api-contact-book/internal/auth"
	"github.com/trapham24065/api-contact-book/internal/models"
	"github.com/trapham24065/api-contact-book/internal/repositories"
	"github.com/trapham24065/api-contact-book/internal/services/dto"
)

// extractTokenFromLink pulls the plaintext token out of the mailed link.
func extractTokenFromLink(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	token := u.Query().Get("token")
	require.NotEmpty(t, token)
	return token
}

func requestReset(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	env.reset.ForgotPassword(dto.ForgotPasswordRequest{Email: email},
		testMeta("POST", "/api/v1/auth/forgot-password"))
	require.NotEmpty(t, env.mailer.links)
	return extractTokenFromLink(t, env.mailer.links[len(env.mailer.links)-1])
}

func TestForgotPasswordStoresHashNotPlaintext(t *testing.T) {
	env := newTestEnv(t)
	registerTestUser(t, env, "reset@example.com", "password123")

	token := requestReset(t, env, "reset@example.com")

	record, err := env.resetRepo.FindByEmail("reset@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, token, record.TokenHash)
	assert.Equal(t, auth.HashResetToken(token), record.TokenHash)
	assert.True(t, record.ExpiresAt.After(time.Now()))
	assert.Nil(t, record.UsedAt)

	// The link embeds the url-escaped email.
	link := env.mailer.links[0]
	assert.True(t, strings.HasPrefix(link, "http://localhost:3000/reset-password?token="))
	assert.Contains(t, link, "email="+url.QueryEscape("reset@example.com"))
}

func TestForgotPasswordUnknownEmailSendsNothing(t *testing.T) {
	env := newTestEnv(t)

	env.reset.ForgotPassword(dto.ForgotPasswordRequest{Email: "ghost@example.com"},
		testMeta("POST", "/api/v1/auth/forgot-password"))

	assert.Empty(t, env.mailer.sent)

	var count int64
	require.NoError(t, env.db.Model(&models.PasswordReset{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestForgotPasswordSupersedesPriorToken(t *testing.T) {
	env := newTestEnv(t)
	registerTestUser(t, env, "super@example.com", "password123")

	first := requestReset(t, env, "super@example.com")
	second := requestReset(t, env, "super@example.com")
	require.NotEqual(t, first, second)

	// Only one live record, matching the latest token.
	var count int64
	require.NoError(t, env.db.Model(&models.PasswordReset{}).Where("email = ?", "super@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	err := env.reset.ResetPassword(dto.ResetPasswordRequest{
		Email:    "super@example.com",
		Token:    first,
		Password: "newpassword1",
	}, testMeta("POST", "/api/v1/auth/reset-password"))
	assert.ErrorIs(t, err, apperrors.ErrResetTokenInvalid)

	err = env.reset.ResetPassword(dto.ResetPasswordRequest{
		Email:    "super@example.com",
		Token:    second,
		Password: "newpassword1",
	}, testMeta("POST", "/api/v1/auth/reset-password"))
	assert.NoError(t, err)
}

func TestResetPasswordSuccessAndSingleUse(t *testing.T) {
	env := newTestEnv(t)
	registerTestUser(t, env, "once@example.com", "password123")
	token := requestReset(t, env, "once@example.com")

	err := env.reset.ResetPassword(dto.ResetPasswordRequest{
		Email:    "once@example.com",
		Token:    token,
		Password: "brand-new-pass",
	}, testMeta("POST", "/api/v1/auth/reset-password"))
	require.NoError(t, err)

	user, err := env.userRepo.FindByEmail("once@example.com")
	require.NoError(t, err)
	assert.True(t, auth.CheckPasswordHash("brand-new-pass", user.PasswordHash))

	// The consumed record survives with used_at set.
	record, err := env.resetRepo.FindByEmail("once@example.com")
	require.NoError(t, err)
	assert.NotNil(t, record.UsedAt)

	// A second use of the same token fails.
	err = env.reset.ResetPassword(dto.ResetPasswordRequest{
		Email:    "once@example.com",
		Token:    token,
		Password: "another-pass",
	}, testMeta("POST", "/api/v1/auth/reset-password"))
	assert.ErrorIs(t, err, apperrors.ErrResetTokenInvalid)
}

func TestResetPasswordWrongToken(t *testing.T) {
	env := newTestEnv(t)
	registerTestUser(t, env, "mismatch@example.com", "password123")
	requestReset(t, env, "mismatch@example.com")

	err := env.reset.ResetPassword(dto.ResetPasswordRequest{
		Email:    "mismatch@example.com",
		Token:    strings.Repeat("a", 128),
		Password: "newpassword1",
	}, testMeta("POST", "/api/v1/auth/reset-password"))
	assert.ErrorIs(t, err, apperrors.ErrResetTokenInvalid)
}

func TestResetPasswordNoRecord(t *testing.T) {
	env := newTestEnv(t)

	err := env.reset.ResetPassword(dto.ResetPasswordRequest{
		Email:    "norecord@example.com",
		Token:    strings.Repeat("a", 128),
		Password: "newpassword1",
	}, testMeta("POST", "/api/v1/auth/reset-password"))
	assert.ErrorIs(t, err, apperrors.ErrResetTokenInvalid)
}

func TestResetPasswordExpiredTokenIsDeleted(t *testing.T) {
	env := newTestEnv(t)
	registerTestUser(t, env, "expired@example.com", "password123")
	token := requestReset(t, env, "expired@example.com")

	require.NoError(t, env.db.Model(&models.PasswordReset{}).
		Where("email = ?", "expired@example.com").
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	err := env.reset.ResetPassword(dto.ResetPasswordRequest{
		Email:    "expired@example.com",
		Token:    token,
		Password: "newpassword1",
	}, testMeta("POST", "/api/v1/auth/reset-password"))
	assert.ErrorIs(t, err, apperrors.ErrResetTokenExpired)

	// The expired row is gone; a retry reports invalid, not expired.
	var count int64
	require.NoError(t, env.db.Model(&models.PasswordReset{}).Where("email = ?", "expired@example.com").Count(&count).Error)
	assert.Equal(t, int64(0), count)

	err = env.reset.ResetPassword(dto.ResetPasswordRequest{
		Email:    "expired@example.com",
		Token:    token,
		Password: "newpassword1",
	}, testMeta("POST", "/api/v1/auth/reset-password"))
	assert.ErrorIs(t, err, apperrors.ErrResetTokenInvalid)
}

func TestResetPasswordUserDeleted(t *testing.T) {
	env := newTestEnv(t)
	registerTestUser(t, env, "vanished@example.com", "password123")
	token := requestReset(t, env, "vanished@example.com")

	user, err := env.userRepo.FindByEmail("vanished@example.com")
	require.NoError(t, err)
	require.NoError(t, env.userRepo.Delete(user.UserID))

	err = env.reset.ResetPassword(dto.ResetPasswordRequest{
		Email:    "vanished@example.com",
		Token:    token,
		Password: "newpassword1",
	}, testMeta("POST", "/api/v1/auth/reset-password"))
	assert.ErrorIs(t, err, apperrors.ErrResetUserMissing)
}

func TestForgotPasswordMailFailureStillIssuesToken(t *testing.T) {
	env := newTestEnv(t)
	registerTestUser(t, env, "smtp-down@example.com", "password123")
	env.mailer.fail = true

	env.reset.ForgotPassword(dto.ForgotPasswordRequest{Email: "smtp-down@example.com"},
		testMeta("POST", "/api/v1/auth/forgot-password"))

	record, err := env.resetRepo.FindByEmail("smtp-down@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, record.TokenHash)
}

// stuckResetRepo refuses to consume tokens, standing in for a storage
// failure on the used_at write.
type stuckResetRepo struct {
	repositories.PasswordResetRepository
}

func (r *stuckResetRepo) MarkUsed(id uint, usedAt time.Time) error {
	return errors.New("disk full")
}

// A reset must not change the password unless the token is consumed first;
// otherwise a storage hiccup on the used_at write leaves a live token
// behind a completed reset.
func TestResetPasswordFailsWhenTokenCannotBeConsumed(t *testing.T) {
	env := newTestEnv(t)
	registerTestUser(t, env, "stuck@example.com", "password123")
	token := requestReset(t, env, "stuck@example.com")

	stuck := NewPasswordResetService(env.userRepo, &stuckResetRepo{env.resetRepo},
		env.mailer, "http://localhost:3000", env.reset.reqLog)

	err := stuck.ResetPassword(dto.ResetPasswordRequest{
		Email:    "stuck@example.com",
		Token:    token,
		Password: "brand-new-pass",
	}, testMeta("POST", "/api/v1/auth/reset-password"))
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInternalError, appErr.Code)

	// The old password still works and the token is still redeemable.
	user, err := env.userRepo.FindByEmail("stuck@example.com")
	require.NoError(t, err)
	assert.True(t, auth.CheckPasswordHash("password123", user.PasswordHash))

	err = env.reset.ResetPassword(dto.ResetPasswordRequest{
		Email:    "stuck@example.com",
		Token:    token,
		Password: "brand-new-pass",
	}, testMeta("POST", "/api/v1/auth/reset-password"))
	require.NoError(t, err)
}
