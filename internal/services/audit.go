package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/trapham24065/api-contact-book/internal/logger"
	"github.com/trapham24065/api-contact-book/internal/models"
	"github.com/trapham24065/api-contact-book/internal/repositories"
)

// AuditRecorder writes audit_log rows for mutations to users and contacts.
type AuditRecorder interface {
	Record(actorID *uint, action, entityType string, entityID uint, changes any)
	RecordTx(tx *gorm.DB, actorID *uint, action, entityType string, entityID uint, changes any) error
}

type auditRecorder struct {
	repo repositories.AuditLogRepository
}

func NewAuditRecorder(repo repositories.AuditLogRepository) AuditRecorder {
	return &auditRecorder{repo: repo}
}

func (a *auditRecorder) Record(actorID *uint, action, entityType string, entityID uint, changes any) {
	if err := a.repo.Create(a.entry(actorID, action, entityType, entityID, changes)); err != nil {
		logger.Error("failed to write audit log", "error", err, "action", action, "entity_type", entityType)
	}
}

func (a *auditRecorder) RecordTx(tx *gorm.DB, actorID *uint, action, entityType string, entityID uint, changes any) error {
	return a.repo.WithTx(tx).Create(a.entry(actorID, action, entityType, entityID, changes))
}

func (a *auditRecorder) entry(actorID *uint, action, entityType string, entityID uint, changes any) *models.AuditLog {
	details := ""
	if changes != nil {
		if raw, err := json.Marshal(changes); err == nil {
			details = string(raw)
		}
	}
	return &models.AuditLog{
		UserID:     actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}
}
