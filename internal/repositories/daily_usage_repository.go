package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/trapham24065/api-contact-book/internal/models"
)

type DailyUsageRepository interface {
	WithTx(tx *gorm.DB) DailyUsageRepository

	// FindOrCreate lazily creates the counter row for the user's day with
	// request_count 0. Safe against a concurrent first request thanks to
	// the unique (user_id, usage_date) index.
	FindOrCreate(userID uint, date string) (*models.UserDailyUsage, error)

	// IncrementIfBelow performs the atomic quota admission: a single
	// conditional UPDATE that increments request_count only while it is
	// still below the quota. Returns true when the request was admitted.
	// Two concurrent calls can never both be admitted at the boundary.
	IncrementIfBelow(userID uint, date string, quota int) (bool, error)

	Find(userID uint, date string) (*models.UserDailyUsage, error)
}

type dailyUsageRepository struct {
	db *gorm.DB
}

func NewDailyUsageRepository(db *gorm.DB) DailyUsageRepository {
	return &dailyUsageRepository{db: db}
}

func (r *dailyUsageRepository) WithTx(tx *gorm.DB) DailyUsageRepository {
	return &dailyUsageRepository{db: tx}
}

func (r *dailyUsageRepository) FindOrCreate(userID uint, date string) (*models.UserDailyUsage, error) {
	usage := models.UserDailyUsage{
		UserID:    userID,
		UsageDate: date,
	}
	// ON CONFLICT DO NOTHING keeps the existing row; re-read after to get
	// the current count either way.
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&usage).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}
	return r.Find(userID, date)
}

func (r *dailyUsageRepository) IncrementIfBelow(userID uint, date string, quota int) (bool, error) {
	result := r.db.Model(&models.UserDailyUsage{}).
		Where("user_id = ? AND usage_date = ? AND request_count < ?", userID, date, quota).
		Update("request_count", gorm.Expr("request_count + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *dailyUsageRepository) Find(userID uint, date string) (*models.UserDailyUsage, error) {
	var usage models.UserDailyUsage
	err := r.db.First(&usage, "user_id = ? AND usage_date = ?", userID, date).Error
	if err != nil {
		return nil, err
	}
	return &usage, nil
}
