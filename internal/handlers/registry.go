package handlers

import (
	"github.com/trapham24065/api-contact-book/internal/services"
	"github.com/trapham24065/api-contact-book/internal/validator"
)

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	ContactHandler *ContactHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:    NewAuthHandler(base, sc.AuthService, sc.PasswordResetService, sc.RequestLogger),
		UserHandler:    NewUserHandler(base, sc.UserService),
		ContactHandler: NewContactHandler(base, sc.ContactService),
	}
}
