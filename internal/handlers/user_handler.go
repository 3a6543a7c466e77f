package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trapham24065/api-contact-book/internal/apperrors"
	"github.com/trapham24065/api-contact-book/internal/models"
	"github.com/trapham24065/api-contact-book/internal/services"
	"github.com/trapham24065/api-contact-book/internal/services/dto"
)

// UserHandler exposes the administrator account-management endpoints.
type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW, quotaMW gin.HandlerFunc) {
	users := rg.Group("/users", authMW, quotaMW, adminMW)
	{
		users.GET("", h.List)
		users.POST("", h.Create)
		users.GET("/:id", h.Get)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}

func (h *UserHandler) List(c *gin.Context) {
	query := dto.ListUsersQuery{
		Status: models.UserStatus(c.Query("status")),
		Sort:   c.Query("sort"),
	}
	if roleStr := c.Query("role"); roleStr != "" {
		if roleInt, err := strconv.Atoi(roleStr); err == nil {
			role := models.UserRole(roleInt)
			query.Role = &role
		}
	}
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.userService.ListUsers(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": result})
}

func (h *UserHandler) Create(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(actor, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": user})
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}

func (h *UserHandler) Update(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(actor, id, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}

func (h *UserHandler) Delete(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(actor, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "User deleted."})
}

func (h *UserHandler) pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid id parameter"))
		return 0, false
	}
	return uint(id), true
}
