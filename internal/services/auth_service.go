package services

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/trapham24065/api-contact-book/internal/apperrors"
	"github.com/trapham24065/api-contact-book/internal/auth"
	"github.com/trapham24065/api-contact-book/internal/logger"
	"github.com/trapham24065/api-contact-book/internal/models"
	"github.com/trapham24065/api-contact-book/internal/repositories"
	"github.com/trapham24065/api-contact-book/internal/services/dto"
)

const apiKeyLength = 64

// AuthService handles registration, login and password changes. Every branch
// of every operation, success or failure, leaves a request-log row.
type AuthService interface {
	Register(req dto.RegisterRequest, meta dto.RequestMeta) (*dto.RegisterResult, error)
	Login(req dto.LoginRequest, meta dto.RequestMeta) (*dto.LoginResponse, error)
	ChangePassword(user *models.User, req dto.ChangePasswordRequest, meta dto.RequestMeta) error
}

type AuthServiceImpl struct {
	db           *gorm.DB
	userRepo     repositories.UserRepository
	apiKeyRepo   repositories.ApiKeyRepository
	tokenIssuer  *auth.TokenIssuer
	reqLog       RequestLogger
	defaultQuota int
}

func NewAuthService(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	apiKeyRepo repositories.ApiKeyRepository,
	tokenIssuer *auth.TokenIssuer,
	reqLog RequestLogger,
	defaultQuota int,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		db:           db,
		userRepo:     userRepo,
		apiKeyRepo:   apiKeyRepo,
		tokenIssuer:  tokenIssuer,
		reqLog:       reqLog,
		defaultQuota: defaultQuota,
	}
}

// Register provisions a new account together with its API key. The user row,
// the key row and the request-log row commit in one transaction, so a
// registration either fully exists or leaves no trace beyond the error
// response. The plaintext key is returned exactly once.
func (s *AuthServiceImpl) Register(req dto.RegisterRequest, meta dto.RequestMeta) (*dto.RegisterResult, error) {
	taken, err := s.userRepo.EmailTaken(req.Email)
	if err != nil {
		s.reqLog.Log(meta, http.StatusInternalServerError, nil)
		return nil, apperrors.InternalError(err)
	}
	if taken {
		s.reqLog.Log(meta, http.StatusUnprocessableEntity, nil)
		return nil, apperrors.ErrEmailAlreadyExists.WithDetails(map[string]string{
			"email": "The email has already been taken.",
		})
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.reqLog.Log(meta, http.StatusInternalServerError, nil)
		return nil, apperrors.InternalError(err)
	}

	plainKey, err := auth.GenerateApiKey(apiKeyLength)
	if err != nil {
		s.reqLog.Log(meta, http.StatusInternalServerError, nil)
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleStandard,
		Status:       models.UserStatusActive,
		DailyQuota:   s.defaultQuota,
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.WithTx(tx).Create(user); err != nil {
			return err
		}

		key := &models.UserApiKey{
			UserID: user.UserID,
			ApiKey: plainKey,
			Status: models.ApiKeyStatusInactive,
		}
		if err := s.apiKeyRepo.WithTx(tx).Create(key); err != nil {
			return err
		}

		return s.reqLog.LogTx(tx, meta, http.StatusCreated, &user.UserID)
	})
	if txErr != nil {
		// A duplicate can still slip past the pre-check under concurrency.
		if errors.Is(txErr, repositories.ErrUserAlreadyExists) {
			s.reqLog.Log(meta, http.StatusUnprocessableEntity, nil)
			return nil, apperrors.ErrEmailAlreadyExists.WithDetails(map[string]string{
				"email": "The email has already been taken.",
			})
		}
		s.reqLog.Log(meta, http.StatusInternalServerError, nil)
		return nil, apperrors.InternalError(txErr)
	}

	logger.Info("user registered", "user_id", user.UserID, "email", user.Email)

	return &dto.RegisterResult{
		User: dto.UserSummary{
			UserID:    user.UserID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
		ApiKey: plainKey,
	}, nil
}

// Login authenticates credentials and issues a bearer token. A missing user
// and a wrong password produce the same 401 so the response does not reveal
// which accounts exist.
func (s *AuthServiceImpl) Login(req dto.LoginRequest, meta dto.RequestMeta) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.reqLog.Log(meta, http.StatusUnauthorized, nil)
			return nil, apperrors.ErrInvalidCredentials
		}
		s.reqLog.Log(meta, http.StatusInternalServerError, nil)
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.reqLog.Log(meta, http.StatusUnauthorized, &user.UserID)
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive() {
		s.reqLog.Log(meta, http.StatusForbidden, &user.UserID)
		logger.Warn("login rejected, account not active", "user_id", user.UserID, "status", user.Status)
		return nil, apperrors.ErrAccountNotActive
	}

	token, err := s.tokenIssuer.Issue(user)
	if err != nil {
		s.reqLog.Log(meta, http.StatusInternalServerError, &user.UserID)
		return nil, apperrors.InternalError(err)
	}

	s.reqLog.Log(meta, http.StatusOK, &user.UserID)

	return &dto.LoginResponse{
		Status:    "success",
		Message:   "Login successful",
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: s.tokenIssuer.TTLMinutes() * 60,
		User: dto.UserInfo{
			UserID: user.UserID,
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
			Status: user.Status,
		},
	}, nil
}

// ChangePassword verifies the current password before persisting the new
// hash. Strength rules for the new password are enforced by validation tags
// before this is called.
func (s *AuthServiceImpl) ChangePassword(user *models.User, req dto.ChangePasswordRequest, meta dto.RequestMeta) error {
	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		s.reqLog.Log(meta, http.StatusUnauthorized, &user.UserID)
		return apperrors.New(apperrors.CodeInvalidCredentials, "Current password is incorrect.", http.StatusUnauthorized)
	}

	newHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		s.reqLog.Log(meta, http.StatusInternalServerError, &user.UserID)
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(user.UserID, newHash); err != nil {
		s.reqLog.Log(meta, http.StatusInternalServerError, &user.UserID)
		return apperrors.InternalError(err)
	}

	s.reqLog.Log(meta, http.StatusOK, &user.UserID)
	logger.Info("password changed", "user_id", user.UserID)
	return nil
}
