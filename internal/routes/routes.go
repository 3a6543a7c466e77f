package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/trapham24065/api-contact-book/internal/handlers"
	"github.com/trapham24065/api-contact-book/internal/middleware"
	"github.com/trapham24065/api-contact-book/internal/services"
)

// RegisterRoutes wires all HTTP routes under /api/v1. The auth and quota
// middleware are built once here and shared by every protected group.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	sc *services.ServiceContainer,
) {
	authMW := middleware.AuthMiddleware(sc.TokenIssuer, sc.UserRepo)
	quotaMW := middleware.QuotaMiddleware(sc.ApiKeyRepo, sc.DailyUsageRepo, sc.RequestLogger)
	adminMW := middleware.RequireAdmin()

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, authMW, quotaMW)
		appHandlers.ContactHandler.RegisterRoutes(api, authMW, quotaMW)
		appHandlers.UserHandler.RegisterRoutes(api, authMW, adminMW, quotaMW)
	}
}
