package services

import (
	"errors"
	"strings"

	"github.com/trapham24065/api-contact-book/internal/apperrors"
	"github.com/trapham24065/api-contact-book/internal/auth"
	"github.com/trapham24065/api-contact-book/internal/logger"
	"github.com/trapham24065/api-contact-book/internal/models"
	"github.com/trapham24065/api-contact-book/internal/repositories"
	"github.com/trapham24065/api-contact-book/internal/services/dto"
)

// UserService is the administrator account-management surface.
type UserService interface {
	ListUsers(query dto.ListUsersQuery) (*dto.ListResult[models.User], error)
	CreateUser(actor *models.User, req dto.CreateUserRequest) (*models.User, error)
	GetUser(id uint) (*models.User, error)
	UpdateUser(actor *models.User, id uint, req dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(actor *models.User, id uint) error
}

type UserServiceImpl struct {
	userRepo     repositories.UserRepository
	audit        AuditRecorder
	defaultQuota int
}

func NewUserService(userRepo repositories.UserRepository, audit AuditRecorder, defaultQuota int) *UserServiceImpl {
	return &UserServiceImpl{
		userRepo:     userRepo,
		audit:        audit,
		defaultQuota: defaultQuota,
	}
}

// sortableUserColumns whitelists the sortable fields; anything else falls
// back to created_at so the sort parameter can never inject SQL.
var sortableUserColumns = map[string]bool{
	"user_id":     true,
	"name":        true,
	"email":       true,
	"role":        true,
	"status":      true,
	"daily_quota": true,
	"created_at":  true,
}

func sanitizeUserSort(sort string) string {
	if sort == "" {
		return ""
	}
	column, direction := sort, "asc"
	if idx := strings.IndexByte(sort, ':'); idx >= 0 {
		column, direction = sort[:idx], sort[idx+1:]
	}
	column = strings.ToLower(strings.TrimSpace(column))
	direction = strings.ToLower(strings.TrimSpace(direction))
	if !sortableUserColumns[column] {
		column = "created_at"
	}
	if direction != "asc" && direction != "desc" {
		direction = "desc"
	}
	return column + " " + direction
}

func (s *UserServiceImpl) ListUsers(query dto.ListUsersQuery) (*dto.ListResult[models.User], error) {
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

	users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
		Role:     query.Role,
		Status:   query.Status,
		Sort:     sanitizeUserSort(query.Sort),
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ListResult[models.User]{
		Items: users,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *UserServiceImpl) CreateUser(actor *models.User, req dto.CreateUserRequest) (*models.User, error) {
	taken, err := s.userRepo.EmailTaken(req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrEmailAlreadyExists.WithDetails(map[string]string{
			"email": "The email has already been taken.",
		})
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	quota := s.defaultQuota
	if req.DailyQuota != nil {
		quota = *req.DailyQuota
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.UserRole(*req.Role),
		Status:       models.UserStatusActive,
		DailyQuota:   quota,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists.WithDetails(map[string]string{
				"email": "The email has already been taken.",
			})
		}
		return nil, apperrors.InternalError(err)
	}

	s.audit.Record(&actor.UserID, "user.created", "user", user.UserID, map[string]any{
		"name": user.Name, "email": user.Email, "role": user.Role, "daily_quota": user.DailyQuota,
	})
	logger.Info("user created by admin", "user_id", user.UserID, "actor_id", actor.UserID)

	return user, nil
}

func (s *UserServiceImpl) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("User not found.")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateUser(actor *models.User, id uint, req dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("User not found.")
		}
		return nil, apperrors.InternalError(err)
	}

	changes := map[string]any{}
	if req.Name != nil && *req.Name != user.Name {
		changes["name"] = *req.Name
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.userRepo.EmailTaken(*req.Email)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if taken {
			return nil, apperrors.ErrEmailAlreadyExists.WithDetails(map[string]string{
				"email": "The email has already been taken.",
			})
		}
		changes["email"] = *req.Email
		user.Email = *req.Email
	}
	if req.Status != nil && models.UserStatus(*req.Status) != user.Status {
		changes["status"] = *req.Status
		user.Status = models.UserStatus(*req.Status)
	}
	if req.Role != nil && models.UserRole(*req.Role) != user.Role {
		changes["role"] = *req.Role
		user.Role = models.UserRole(*req.Role)
	}
	if req.DailyQuota != nil && *req.DailyQuota != user.DailyQuota {
		changes["daily_quota"] = *req.DailyQuota
		user.DailyQuota = *req.DailyQuota
	}

	if len(changes) == 0 {
		return user, nil
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("User not found.")
		}
		return nil, apperrors.InternalError(err)
	}

	s.audit.Record(&actor.UserID, "user.updated", "user", user.UserID, changes)
	return user, nil
}

func (s *UserServiceImpl) DeleteUser(actor *models.User, id uint) error {
	if err := s.userRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("User not found.")
		}
		return apperrors.InternalError(err)
	}
	s.audit.Record(&actor.UserID, "user.deleted", "user", id, nil)
	logger.Info("user deleted by admin", "user_id", id, "actor_id", actor.UserID)
	return nil
}
