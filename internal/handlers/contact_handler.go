package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trapham24065/api-contact-book/internal/apperrors"
	"github.com/trapham24065/api-contact-book/internal/services"
	"github.com/trapham24065/api-contact-book/internal/services/dto"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, quotaMW gin.HandlerFunc) {
	contacts := rg.Group("/contacts", authMW, quotaMW)
	{
		contacts.GET("", h.List)
		contacts.POST("", h.Create)
		contacts.GET("/:id", h.Get)
		contacts.PUT("/:id", h.Update)
		contacts.DELETE("/:id", h.Delete)
		contacts.POST("/:id/attributes", h.AddAttribute)
	}
}

func (h *ContactHandler) List(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	query := dto.ListContactsQuery{
		Keyword: c.Query("keyword"),
	}
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.contactService.ListContacts(user, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": result})
}

func (h *ContactHandler) Create(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.StoreContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	contact, err := h.contactService.CreateContact(user, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": contact})
}

func (h *ContactHandler) Get(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	contact, err := h.contactService.GetContact(user, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": contact})
}

func (h *ContactHandler) Update(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	contact, err := h.contactService.UpdateContact(user, id, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": contact})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.contactService.DeleteContact(user, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Contact deleted."})
}

func (h *ContactHandler) AddAttribute(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req dto.StoreAttributeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	attr, err := h.contactService.AddAttribute(user, id, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": attr})
}

func (h *ContactHandler) pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid id parameter"))
		return 0, false
	}
	return uint(id), true
}
