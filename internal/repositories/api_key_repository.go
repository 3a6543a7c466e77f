package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/trapham24065/api-contact-book/internal/models"
)

var ErrApiKeyNotFound = errors.New("api key not found")

type ApiKeyRepository interface {
	WithTx(tx *gorm.DB) ApiKeyRepository

	Create(key *models.UserApiKey) error
	// FindFirstByUserID returns the user's key. The schema allows several
	// keys per user but the workflow provisions exactly one.
	FindFirstByUserID(userID uint) (*models.UserApiKey, error)
	TouchLastUsed(keyID uint) error
}

type apiKeyRepository struct {
	db *gorm.DB
}

func NewApiKeyRepository(db *gorm.DB) ApiKeyRepository {
	return &apiKeyRepository{db: db}
}

func (r *apiKeyRepository) WithTx(tx *gorm.DB) ApiKeyRepository {
	return &apiKeyRepository{db: tx}
}

func (r *apiKeyRepository) Create(key *models.UserApiKey) error {
	return r.db.Create(key).Error
}

func (r *apiKeyRepository) FindFirstByUserID(userID uint) (*models.UserApiKey, error) {
	var key models.UserApiKey
	err := r.db.Order("id").First(&key, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApiKeyNotFound
		}
		return nil, err
	}
	return &key, nil
}

func (r *apiKeyRepository) TouchLastUsed(keyID uint) error {
	return r.db.Model(&models.UserApiKey{}).
		Where("id = ?", keyID).
		Update("last_used_at", time.Now()).Error
}
