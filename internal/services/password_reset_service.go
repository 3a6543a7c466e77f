package services

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/trapham24065/api-contact-book/internal/apperrors"
	"github.com/trapham24065/api-contact-book/internal/auth"
	"github.com/trapham24065/api-contact-book/internal/email"
	"github.com/trapham24065/api-contact-book/internal/logger"
	"github.com/trapham24065/api-contact-book/internal/models"
	"github.com/trapham24065/api-contact-book/internal/repositories"
	"github.com/trapham24065/api-contact-book/internal/services/dto"
)

const resetTokenTTL = 20 * time.Minute

// ForgotPasswordMessage is the body returned for every forgot-password
// request, whether or not the account exists.
const ForgotPasswordMessage = "If an account with that email exists, a password reset link has been sent."

// PasswordResetService owns the reset-token lifecycle: issue on request,
// verify and consume on reset.
type PasswordResetService interface {
	ForgotPassword(req dto.ForgotPasswordRequest, meta dto.RequestMeta)
	ResetPassword(req dto.ResetPasswordRequest, meta dto.RequestMeta) error
}

type PasswordResetServiceImpl struct {
	userRepo    repositories.UserRepository
	resetRepo   repositories.PasswordResetRepository
	mailer      email.Provider
	frontendURL string
	reqLog      RequestLogger
}

func NewPasswordResetService(
	userRepo repositories.UserRepository,
	resetRepo repositories.PasswordResetRepository,
	mailer email.Provider,
	frontendURL string,
	reqLog RequestLogger,
) *PasswordResetServiceImpl {
	return &PasswordResetServiceImpl{
		userRepo:    userRepo,
		resetRepo:   resetRepo,
		mailer:      mailer,
		frontendURL: frontendURL,
		reqLog:      reqLog,
	}
}

// ForgotPassword issues a reset token when the account exists. The caller
// always answers 202 with the same body regardless, so the endpoint cannot
// be used to probe which emails are registered. Mail delivery failures are
// logged and swallowed for the same reason.
func (s *PasswordResetServiceImpl) ForgotPassword(req dto.ForgotPasswordRequest, meta dto.RequestMeta) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if !errors.Is(err, repositories.ErrUserNotFound) {
			logger.Error("forgot-password lookup failed", "error", err)
		}
		s.reqLog.Log(meta, http.StatusAccepted, nil)
		return
	}

	// One live token per user: any earlier request is superseded.
	if err := s.resetRepo.DeleteByUserID(user.UserID); err != nil {
		logger.Error("failed to clear prior reset tokens", "error", err, "user_id", user.UserID)
		s.reqLog.Log(meta, http.StatusAccepted, &user.UserID)
		return
	}

	plaintext, hash, err := auth.GenerateResetToken()
	if err != nil {
		logger.Error("failed to generate reset token", "error", err)
		s.reqLog.Log(meta, http.StatusAccepted, &user.UserID)
		return
	}

	record := &models.PasswordReset{
		UserID:    user.UserID,
		Email:     user.Email,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(resetTokenTTL),
		RequestIP: meta.IP,
		UserAgent: meta.UserAgent,
	}
	if err := s.resetRepo.Create(record); err != nil {
		logger.Error("failed to store reset token", "error", err, "user_id", user.UserID)
		s.reqLog.Log(meta, http.StatusAccepted, &user.UserID)
		return
	}

	link := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.frontendURL, plaintext, url.QueryEscape(user.Email))

	if err := s.mailer.SendPasswordReset(user.Email, user.Name, link); err != nil {
		logger.Error("failed to send reset email", "error", err, "user_id", user.UserID)
	} else {
		logger.Info("password reset email sent", "user_id", user.UserID)
	}

	s.reqLog.Log(meta, http.StatusAccepted, &user.UserID)
}

// ResetPassword consumes a reset token. Checks run in a fixed order and each
// failure keeps its own message: record missing or already used, expired
// (the row is deleted), hash mismatch, then account lookup. On success the
// token row is marked used and kept.
func (s *PasswordResetServiceImpl) ResetPassword(req dto.ResetPasswordRequest, meta dto.RequestMeta) error {
	record, err := s.resetRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrResetRecordNotFound) {
			s.reqLog.Log(meta, http.StatusUnprocessableEntity, nil)
			return apperrors.ErrResetTokenInvalid
		}
		s.reqLog.Log(meta, http.StatusInternalServerError, nil)
		return apperrors.InternalError(err)
	}

	if record.IsUsed() {
		s.reqLog.Log(meta, http.StatusUnprocessableEntity, &record.UserID)
		return apperrors.ErrResetTokenInvalid
	}

	if record.IsExpired(time.Now()) {
		if err := s.resetRepo.Delete(record.ID); err != nil {
			logger.Error("failed to delete expired reset token", "error", err, "reset_id", record.ID)
		}
		s.reqLog.Log(meta, http.StatusUnprocessableEntity, &record.UserID)
		return apperrors.ErrResetTokenExpired
	}

	if !auth.ResetTokenMatches(record.TokenHash, req.Token) {
		s.reqLog.Log(meta, http.StatusUnprocessableEntity, &record.UserID)
		return apperrors.ErrResetTokenInvalid
	}

	user, err := s.userRepo.FindByID(record.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.reqLog.Log(meta, http.StatusUnprocessableEntity, &record.UserID)
			return apperrors.ErrResetUserMissing
		}
		s.reqLog.Log(meta, http.StatusInternalServerError, &record.UserID)
		return apperrors.InternalError(err)
	}

	newHash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.reqLog.Log(meta, http.StatusInternalServerError, &user.UserID)
		return apperrors.InternalError(err)
	}

	// Consume the token before touching the password. If the used_at write
	// fails the password stays unchanged and the token stays redeemable; the
	// reverse order would leave a live token behind a completed reset.
	if err := s.resetRepo.MarkUsed(record.ID, time.Now()); err != nil {
		s.reqLog.Log(meta, http.StatusInternalServerError, &user.UserID)
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(user.UserID, newHash); err != nil {
		s.reqLog.Log(meta, http.StatusInternalServerError, &user.UserID)
		return apperrors.InternalError(err)
	}

	s.reqLog.Log(meta, http.StatusOK, &user.UserID)
	logger.Info("password reset completed", "user_id", user.UserID)
	return nil
}
