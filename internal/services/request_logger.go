package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/trapham24065/api-contact-book/internal/logger"
	"github.com/trapham24065/api-contact-book/internal/models"
	"github.com/trapham24065/api-contact-book/internal/repositories"
	"github.com/trapham24065/api-contact-book/internal/services/dto"
)

// RequestLogger records one request-log row per branch of every auth
// operation. It never raises to the caller: a failed log write is reported
// to the application log and swallowed.
type RequestLogger interface {
	// Log writes an entry against the default connection.
	Log(meta dto.RequestMeta, statusCode int, userID *uint)
	// LogTx writes an entry inside the given transaction so it commits or
	// rolls back with the surrounding writes.
	LogTx(tx *gorm.DB, meta dto.RequestMeta, statusCode int, userID *uint) error
}

type requestLogger struct {
	repo repositories.RequestLogRepository
}

func NewRequestLogger(repo repositories.RequestLogRepository) RequestLogger {
	return &requestLogger{repo: repo}
}

func (l *requestLogger) Log(meta dto.RequestMeta, statusCode int, userID *uint) {
	if err := l.repo.Create(l.entry(meta, statusCode, userID)); err != nil {
		logger.Error("failed to write request log", "error", err, "endpoint", meta.Endpoint)
	}
}

func (l *requestLogger) LogTx(tx *gorm.DB, meta dto.RequestMeta, statusCode int, userID *uint) error {
	return l.repo.WithTx(tx).Create(l.entry(meta, statusCode, userID))
}

func (l *requestLogger) entry(meta dto.RequestMeta, statusCode int, userID *uint) *models.RequestLog {
	now := time.Now()
	return &models.RequestLog{
		UserID:      userID,
		Method:      meta.Method,
		Endpoint:    meta.Endpoint,
		StatusCode:  statusCode,
		IPAddress:   meta.IP,
		UserAgent:   meta.UserAgent,
		RequestedAt: now,
		ReqDate:     now.Format("2006-01-02"),
	}
}
