package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/trapham24065/api-contact-book/internal/models"
)

var (
	ErrContactNotFound       = errors.New("contact not found")
	ErrDuplicateAttributeKey = errors.New("attribute key already exists for this contact")
)

// ContactFilter narrows contact listings. When OwnerID is nil the listing is
// unscoped (administrator view).
type ContactFilter struct {
	OwnerID  *uint
	Keyword  string
	Page     int
	PageSize int
}

type ContactRepository interface {
	WithTx(tx *gorm.DB) ContactRepository

	FindByID(id uint) (*models.Contact, error)
	FindByIDWithAttributes(id uint) (*models.Contact, error)
	Create(contact *models.Contact) error
	Update(contact *models.Contact) error
	Delete(id uint) error
	FindWithFilter(filter ContactFilter) ([]models.Contact, int64, error)

	CreateAttribute(attr *models.ContactAttribute) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) WithTx(tx *gorm.DB) ContactRepository {
	return &contactRepository{db: tx}
}

func (r *contactRepository) FindByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "contact_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) FindByIDWithAttributes(id uint) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.Preload("Attributes").First(&contact, "contact_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *contactRepository) Update(contact *models.Contact) error {
	result := r.db.Model(contact).Updates(map[string]interface{}{
		"name":  contact.Name,
		"phone": contact.Phone,
		"email": contact.Email,
		"note":  contact.Note,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (r *contactRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Contact{}, "contact_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (r *contactRepository) FindWithFilter(filter ContactFilter) ([]models.Contact, int64, error) {
	query := r.db.Model(&models.Contact{})

	if filter.OwnerID != nil {
		query = query.Where("user_id = ?", *filter.OwnerID)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR email LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
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

	var contacts []models.Contact
	err := query.Order("contact_id").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

func (r *contactRepository) CreateAttribute(attr *models.ContactAttribute) error {
	err := r.db.Create(attr).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateAttributeKey
	}
	return err
}
