package services

import (
	"errors"

	"github.com/trapham24065/api-contact-book/internal/apperrors"
	"github.com/trapham24065/api-contact-book/internal/auth"
	"github.com/trapham24065/api-contact-book/internal/models"
	"github.com/trapham24065/api-contact-book/internal/repositories"
	"github.com/trapham24065/api-contact-book/internal/services/dto"
)

// ContactService implements the contact book. Administrators can see and
// manage every contact; standard users only their own.
type ContactService interface {
	ListContacts(user *models.User, query dto.ListContactsQuery) (*dto.ListResult[models.Contact], error)
	CreateContact(user *models.User, req dto.StoreContactRequest) (*models.Contact, error)
	GetContact(user *models.User, id uint) (*models.Contact, error)
	UpdateContact(user *models.User, id uint, req dto.UpdateContactRequest) (*models.Contact, error)
	DeleteContact(user *models.User, id uint) error
	AddAttribute(user *models.User, contactID uint, req dto.StoreAttributeRequest) (*models.ContactAttribute, error)
}

type ContactServiceImpl struct {
	contactRepo repositories.ContactRepository
	audit       AuditRecorder
}

func NewContactService(contactRepo repositories.ContactRepository, audit AuditRecorder) *ContactServiceImpl {
	return &ContactServiceImpl{
		contactRepo: contactRepo,
		audit:       audit,
	}
}

func (s *ContactServiceImpl) ListContacts(user *models.User, query dto.ListContactsQuery) (*dto.ListResult[models.Contact], error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	filter := repositories.ContactFilter{
		Keyword:  query.Keyword,
		Page:     page,
		PageSize: limit,
	}
	if !user.IsAdmin() {
		filter.OwnerID = &user.UserID
	}

	contacts, total, err := s.contactRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ListResult[models.Contact]{
		Items: contacts,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *ContactServiceImpl) CreateContact(user *models.User, req dto.StoreContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		UserID: user.UserID,
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		Note:   req.Note,
	}
	if err := s.contactRepo.Create(contact); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.audit.Record(&user.UserID, "contact.created", "contact", contact.ContactID, map[string]any{
		"name": contact.Name, "phone": contact.Phone,
	})
	return contact, nil
}

// load fetches a contact and enforces the access policy. Contacts the caller
// may not access surface as 404, not 403, so ids of other tenants' contacts
// are not confirmed to exist.
func (s *ContactServiceImpl) load(user *models.User, id uint, withAttributes bool) (*models.Contact, error) {
	var contact *models.Contact
	var err error
	if withAttributes {
		contact, err = s.contactRepo.FindByIDWithAttributes(id)
	} else {
		contact, err = s.contactRepo.FindByID(id)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrContactNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CanAccessContact(user, contact) {
		return nil, apperrors.ErrContactNotFound
	}
	return contact, nil
}

func (s *ContactServiceImpl) GetContact(user *models.User, id uint) (*models.Contact, error) {
	return s.load(user, id, true)
}

func (s *ContactServiceImpl) UpdateContact(user *models.User, id uint, req dto.UpdateContactRequest) (*models.Contact, error) {
	contact, err := s.load(user, id, false)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if req.Name != nil && *req.Name != contact.Name {
		changes["name"] = *req.Name
		contact.Name = *req.Name
	}
	if req.Phone != nil && *req.Phone != contact.Phone {
		changes["phone"] = *req.Phone
		contact.Phone = *req.Phone
	}
	if req.Email != nil && *req.Email != contact.Email {
		changes["email"] = *req.Email
		contact.Email = *req.Email
	}
	if req.Note != nil && *req.Note != contact.Note {
		changes["note"] = *req.Note
		contact.Note = *req.Note
	}

	if len(changes) == 0 {
		return contact, nil
	}

	if err := s.contactRepo.Update(contact); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.audit.Record(&user.UserID, "contact.updated", "contact", contact.ContactID, changes)
	return contact, nil
}

func (s *ContactServiceImpl) DeleteContact(user *models.User, id uint) error {
	contact, err := s.load(user, id, false)
	if err != nil {
		return err
	}

	if err := s.contactRepo.Delete(contact.ContactID); err != nil {
		return apperrors.InternalError(err)
	}

	s.audit.Record(&user.UserID, "contact.deleted", "contact", contact.ContactID, nil)
	return nil
}

func (s *ContactServiceImpl) AddAttribute(user *models.User, contactID uint, req dto.StoreAttributeRequest) (*models.ContactAttribute, error) {
	contact, err := s.load(user, contactID, false)
	if err != nil {
		return nil, err
	}

	attr := &models.ContactAttribute{
		ContactID: contact.ContactID,
		AttrKey:   req.AttrKey,
		AttrValue: req.AttrValue,
	}
	if err := s.contactRepo.CreateAttribute(attr); err != nil {
		if errors.Is(err, repositories.ErrDuplicateAttributeKey) {
			return nil, apperrors.ErrAttributeKeyConflict
		}
		return nil, apperrors.InternalError(err)
	}

	s.audit.Record(&user.UserID, "contact.attribute_added", "contact", contact.ContactID, map[string]any{
		"attr_key": attr.AttrKey,
	})
	return attr, nil
}
