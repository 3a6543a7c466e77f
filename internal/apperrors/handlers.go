package apperrors

import (
	"github.com/gin-gonic/gin"

	"github.com/trapham24065/api-contact-book/internal/logger"
)

// ErrorResponse is the error envelope returned to clients.
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// HandleError maps any error to the matching HTTP status and envelope.
// Unknown errors collapse to a generic 500 with no internal detail.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr,
			"path", c.Request.URL.Path,
		)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Status:  "error",
		Message: appErr.Message,
		Errors:  appErr.Details,
	})
}
