package repositories

import (
	"gorm.io/gorm"

	"github.com/trapham24065/api-contact-book/internal/models"
)

type AuditLogRepository interface {
	WithTx(tx *gorm.DB) AuditLogRepository

	Create(entry *models.AuditLog) error
	FindByEntity(entityType string, entityID uint) ([]models.AuditLog, error)
}

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) WithTx(tx *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: tx}
}

func (r *auditLogRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *auditLogRepository) FindByEntity(entityType string, entityID uint) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at").
		Find(&entries).Error
	return entries, err
}
