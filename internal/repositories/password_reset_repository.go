package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/trapham24065/api-contact-book/internal/models"
)

var ErrResetRecordNotFound = errors.New("password reset record not found")

type PasswordResetRepository interface {
	WithTx(tx *gorm.DB) PasswordResetRepository

	Create(reset *models.PasswordReset) error
	FindByEmail(email string) (*models.PasswordReset, error)
	// DeleteByUserID removes any prior reset records so at most one live
	// token exists per user.
	DeleteByUserID(userID uint) error
	Delete(id uint) error
	MarkUsed(id uint, usedAt time.Time) error
}

type passwordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (r *passwordResetRepository) WithTx(tx *gorm.DB) PasswordResetRepository {
	return &passwordResetRepository{db: tx}
}

func (r *passwordResetRepository) Create(reset *models.PasswordReset) error {
	return r.db.Create(reset).Error
}

func (r *passwordResetRepository) FindByEmail(email string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	err := r.db.First(&reset, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetRecordNotFound
		}
		return nil, err
	}
	return &reset, nil
}

func (r *passwordResetRepository) DeleteByUserID(userID uint) error {
	return r.db.Delete(&models.PasswordReset{}, "user_id = ?", userID).Error
}

func (r *passwordResetRepository) Delete(id uint) error {
	return r.db.Delete(&models.PasswordReset{}, "id = ?", id).Error
}

func (r *passwordResetRepository) MarkUsed(id uint, usedAt time.Time) error {
	return r.db.Model(&models.PasswordReset{}).
		Where("id = ?", id).
		Update("used_at", usedAt).Error
}
