package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/trapham24065/api-contact-book/internal/apperrors"
	"github.com/trapham24065/api-contact-book/internal/logger"
	"github.com/trapham24065/api-contact-book/internal/middleware"
	"github.com/trapham24065/api-contact-book/internal/models"
	"github.com/trapham24065/api-contact-book/internal/services/dto"
	"github.com/trapham24065/api-contact-book/internal/validator"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// BindAndValidate_JSON binds the JSON body and runs struct validation.
// Malformed bodies return 400, rule violations 422 with per-field messages.
// Returns false after writing the error response.
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
			return false
		}
		apperrors.HandleError(c, apperrors.InternalError(err))
		return false
	}

	return true
}

// CurrentUser returns the authenticated user or writes a 401.
func (h *BaseHandler) CurrentUser(c *gin.Context) (*models.User, bool) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrInvalidCredentials)
		return nil, false
	}
	return user, true
}

// RequestMeta captures the transport facts the services record.
func (h *BaseHandler) RequestMeta(c *gin.Context) dto.RequestMeta {
	return dto.RequestMeta{
		Method:    c.Request.Method,
		Endpoint:  c.Request.URL.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}
