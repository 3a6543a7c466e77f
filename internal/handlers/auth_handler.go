package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trapham24065/api-contact-book/internal/middleware"
	"github.com/trapham24065/api-contact-book/internal/services"
	"github.com/trapham24065/api-contact-book/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService  services.AuthService
	resetService services.PasswordResetService
	reqLog       services.RequestLogger
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, resetService services.PasswordResetService, reqLog services.RequestLogger) *AuthHandler {
	return &AuthHandler{
		BaseHandler:  base,
		authService:  authService,
		resetService: resetService,
		reqLog:       reqLog,
	}
}

// bindAuthRequest binds and validates like BindAndValidate_JSON, and
// additionally records rejected bodies, so every branch of an auth
// operation lands in the request log.
func (h *AuthHandler) bindAuthRequest(c *gin.Context, obj interface{}, userID *uint) bool {
	if h.BindAndValidate_JSON(c, obj) {
		return true
	}
	h.reqLog.Log(h.RequestMeta(c), c.Writer.Status(), userID)
	return false
}

// RegisterRoutes wires the auth endpoints. The unauthenticated routes carry
// per-IP throttles; change-password additionally passes the quota gate.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, quotaMW gin.HandlerFunc) {
	loginThrottle := middleware.NewThrottler(10, time.Minute)
	resetThrottle := middleware.NewThrottler(5, time.Hour)
	changeThrottle := middleware.NewThrottler(10, time.Hour)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", loginThrottle.Middleware(), h.Register)
		auth.POST("/login", loginThrottle.Middleware(), h.Login)
		auth.POST("/forgot-password", resetThrottle.Middleware(), h.ForgotPassword)
		auth.POST("/reset-password", resetThrottle.Middleware(), h.ResetPassword)
		auth.POST("/change-password", changeThrottle.Middleware(), authMW, quotaMW, h.ChangePassword)
	}

	// Profile lookup is session-only: keys start inactive, so gating it on
	// the quota chain would lock new accounts out of their own profile.
	rg.GET("/me", authMW, h.Me)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.bindAuthRequest(c, &req, nil) {
		return
	}

	result, err := h.authService.Register(req, h.RequestMeta(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Registration successful. Store your API key securely; it will not be shown again.",
		"data":    result,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.bindAuthRequest(c, &req, nil) {
		return
	}

	response, err := h.authService.Login(req, h.RequestMeta(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ForgotPassword always answers 202 with the same body so the endpoint does
// not reveal which accounts exist.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.bindAuthRequest(c, &req, nil) {
		return
	}

	h.resetService.ForgotPassword(req, h.RequestMeta(c))

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "success",
		"message": services.ForgotPasswordMessage,
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.bindAuthRequest(c, &req, nil) {
		return
	}

	if err := h.resetService.ResetPassword(req, h.RequestMeta(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Your password has been reset.",
	})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.bindAuthRequest(c, &req, &user.UserID) {
		return
	}

	if err := h.authService.ChangePassword(user, req, h.RequestMeta(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Password changed successfully.",
	})
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": dto.UserInfo{
			UserID: user.UserID,
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
			Status: user.Status,
		},
	})
}
