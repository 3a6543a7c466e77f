package services

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/trapham24065/api-contact-book/internal/auth"
	"github.com/trapham24065/api-contact-book/internal/models"
	"github.com/trapham24065/api-contact-book/internal/repositories"
	"github.com/trapham24065/api-contact-book/internal/services/dto"
)

type testEnv struct {
	db     *gorm.DB
	auth   *AuthServiceImpl
	reset  *PasswordResetServiceImpl
	users  *UserServiceImpl
	mailer *fakeMailer

	userRepo  repositories.UserRepository
	keyRepo   repositories.ApiKeyRepository
	resetRepo repositories.PasswordResetRepository
	issuer    *auth.TokenIssuer
}

// fakeMailer records sent reset links instead of dialing SMTP.
type fakeMailer struct {
	mu    sync.Mutex
	sent  []string
	links []string
	fail  bool
}

func (m *fakeMailer) SendPasswordReset(toEmail, recipientName, resetLink string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errSMTPDown
	}
	m.sent = append(m.sent, toEmail)
	m.links = append(m.links, resetLink)
	return nil
}

var errSMTPDown = &smtpDownError{}

type smtpDownError struct{}

func (e *smtpDownError) Error() string { return "smtp unavailable" }

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserApiKey{},
		&models.PasswordReset{},
		&models.UserDailyUsage{},
		&models.RequestLog{},
		&models.AuditLog{},
		&models.Contact{},
		&models.ContactAttribute{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	keyRepo := repositories.NewApiKeyRepository(db)
	resetRepo := repositories.NewPasswordResetRepository(db)
	reqLog := NewRequestLogger(repositories.NewRequestLogRepository(db))
	audit := NewAuditRecorder(repositories.NewAuditLogRepository(db))
	issuer := auth.NewTokenIssuer("test-secret", 60)
	mailer := &fakeMailer{}

	return &testEnv{
		db:        db,
		auth:      NewAuthService(db, userRepo, keyRepo, issuer, reqLog, 100),
		reset:     NewPasswordResetService(userRepo, resetRepo, mailer, "http://localhost:3000", reqLog),
		users:     NewUserService(userRepo, audit, 100),
		mailer:    mailer,
		userRepo:  userRepo,
		keyRepo:   keyRepo,
		resetRepo: resetRepo,
		issuer:    issuer,
	}
}

func testMeta(method, endpoint string) dto.RequestMeta {
	return dto.RequestMeta{
		Method:    method,
		Endpoint:  endpoint,
		IP:        "127.0.0.1",
		UserAgent: "go-test",
	}
}
