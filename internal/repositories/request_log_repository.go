package repositories

import (
	"gorm.io/gorm"

	"github.com/trapham24065/api-contact-book/internal/models"
)

type RequestLogRepository interface {
	WithTx(tx *gorm.DB) RequestLogRepository

	Create(entry *models.RequestLog) error
}

type requestLogRepository struct {
	db *gorm.DB
}

func NewRequestLogRepository(db *gorm.DB) RequestLogRepository {
	return &requestLogRepository{db: db}
}

func (r *requestLogRepository) WithTx(tx *gorm.DB) RequestLogRepository {
	return &requestLogRepository{db: tx}
}

func (r *requestLogRepository) Create(entry *models.RequestLog) error {
	return r.db.Create(entry).Error
}
