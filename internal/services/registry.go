package services

import (
	"gorm.io/gorm"

	"github.com/trapham24065/api-contact-book/internal/auth"
	"github.com/trapham24065/api-contact-book/internal/config"
	"github.com/trapham24065/api-contact-book/internal/email"
	"github.com/trapham24065/api-contact-book/internal/repositories"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService          AuthService
	PasswordResetService PasswordResetService
	UserService          UserService
	ContactService       ContactService
	RequestLogger        RequestLogger
	Audit                AuditRecorder

	UserRepo       repositories.UserRepository
	ApiKeyRepo     repositories.ApiKeyRepository
	DailyUsageRepo repositories.DailyUsageRepository

	TokenIssuer *auth.TokenIssuer
}

// NewServiceContainer wires repositories and services against the shared
// connection pool.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	apiKeyRepo := repositories.NewApiKeyRepository(db)
	resetRepo := repositories.NewPasswordResetRepository(db)
	usageRepo := repositories.NewDailyUsageRepository(db)
	requestLogRepo := repositories.NewRequestLogRepository(db)
	auditLogRepo := repositories.NewAuditLogRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	reqLog := NewRequestLogger(requestLogRepo)
	audit := NewAuditRecorder(auditLogRepo)
	tokenIssuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)

	return &ServiceContainer{
		AuthService:          NewAuthService(db, userRepo, apiKeyRepo, tokenIssuer, reqLog, cfg.Quota.DefaultDaily),
		PasswordResetService: NewPasswordResetService(userRepo, resetRepo, mailer, cfg.App.FrontendURL, reqLog),
		UserService:          NewUserService(userRepo, audit, cfg.Quota.DefaultDaily),
		ContactService:       NewContactService(contactRepo, audit),
		RequestLogger:        reqLog,
		Audit:                audit,
		UserRepo:             userRepo,
		ApiKeyRepo:           apiKeyRepo,
		DailyUsageRepo:       usageRepo,
		TokenIssuer:          tokenIssuer,
	}
}
