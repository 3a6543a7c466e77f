package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/trapham24065/api-contact-book/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserFilter narrows admin user listings.
type UserFilter struct {
	Role     *models.UserRole
	Status   models.UserStatus
	Sort     string // "field:direction", defaults to created_at:desc
	Page     int
	PageSize int
}

type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository

	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	EmailTaken(email string) (bool, error)
	Create(user *models.User) error
	Update(user *models.User) error
	UpdatePassword(userID uint, passwordHash string) error
	Delete(userID uint) error
	FindWithFilter(filter UserFilter) ([]models.User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{db: tx}
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "user_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// EmailTaken checks uniqueness among non-deleted users. The soft-delete
// scope is applied by gorm automatically.
func (r *userRepository) EmailTaken(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Create(user *models.User) error {
	err := r.db.Create(user).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUserAlreadyExists
	}
	return err
}

func (r *userRepository) Update(user *models.User) error {
	result := r.db.Model(user).Updates(map[string]interface{}{
		"name":        user.Name,
		"email":       user.Email,
		"role":        user.Role,
		"status":      user.Status,
		"daily_quota": user.DailyQuota,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdatePassword(userID uint, passwordHash string) error {
	result := r.db.Model(&models.User{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"password":   passwordHash,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete soft-deletes the user.
func (r *userRepository) Delete(userID uint) error {
	result := r.db.Delete(&models.User{}, "user_id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) FindWithFilter(filter UserFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at desc"
	if filter.Sort != "" {
		order = filter.Sort
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	var users []models.User
	err := query.Order(order).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
