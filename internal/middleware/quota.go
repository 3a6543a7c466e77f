package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trapham24065/api-contact-book/internal/apperrors"
	"github.com/trapham24065/api-contact-book/internal/logger"
	"github.com/trapham24065/api-contact-book/internal/repositories"
	"github.com/trapham24065/api-contact-book/internal/services"
	"github.com/trapham24065/api-contact-book/internal/services/dto"
)

// QuotaMiddleware is the admission gate behind AuthMiddleware. Order of
// checks: account status, admin bypass, API key state, then the atomic
// counter increment. Rejections leave a request-log row; admitted requests
// are logged by the handler pipeline.
func QuotaMiddleware(
	apiKeys repositories.ApiKeyRepository,
	usage repositories.DailyUsageRepository,
	reqLog services.RequestLogger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Unauthenticated",
			})
			return
		}

		meta := dto.RequestMeta{
			Method:    c.Request.Method,
			Endpoint:  c.Request.URL.Path,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		if !user.IsActive() {
			reqLog.Log(meta, http.StatusForbidden, &user.UserID)
			abortWith(c, apperrors.ErrAccountNotActive)
			return
		}

		// Administrators are exempt from key checks and quota accounting.
		if user.IsAdmin() {
			c.Next()
			return
		}

		key, err := apiKeys.FindFirstByUserID(user.UserID)
		if err != nil {
			if errors.Is(err, repositories.ErrApiKeyNotFound) {
				reqLog.Log(meta, http.StatusForbidden, &user.UserID)
				abortWith(c, apperrors.ErrApiKeyInactive)
				return
			}
			reqLog.Log(meta, http.StatusInternalServerError, &user.UserID)
			abortWith(c, apperrors.InternalError(err))
			return
		}
		if !key.IsActive() {
			reqLog.Log(meta, http.StatusForbidden, &user.UserID)
			abortWith(c, apperrors.ErrApiKeyInactive)
			return
		}

		today := dto.Today()
		if _, err := usage.FindOrCreate(user.UserID, today); err != nil {
			reqLog.Log(meta, http.StatusInternalServerError, &user.UserID)
			abortWith(c, apperrors.InternalError(err))
			return
		}

		admitted, err := usage.IncrementIfBelow(user.UserID, today, user.DailyQuota)
		if err != nil {
			reqLog.Log(meta, http.StatusInternalServerError, &user.UserID)
			abortWith(c, apperrors.InternalError(err))
			return
		}
		if !admitted {
			reqLog.Log(meta, http.StatusTooManyRequests, &user.UserID)
			abortWith(c, apperrors.ErrQuotaExceeded)
			return
		}

		if err := apiKeys.TouchLastUsed(key.ID); err != nil {
			logger.Error("failed to touch api key", "error", err, "key_id", key.ID)
		}

		c.Next()
	}
}

func abortWith(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
	c.Abort()
}
