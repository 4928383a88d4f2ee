package handler

import (
	"github.com/gin-gonic/gin"

	"orgsite-backend/internal/domains/contact"
	"orgsite-backend/internal/shared/response"
	"orgsite-backend/internal/shared/utils"
)

type ContactHandler struct {
	service contact.Service
}

func NewContactHandler(service contact.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// List handles GET /api/v1/contacts
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.service.List(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, contacts)
}

// Get handles GET /api/v1/contacts/:id
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, contact.ErrContactNotFound)
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, result)
}

// Create handles POST /api/v1/contacts
func (h *ContactHandler) Create(c *gin.Context) {
	var req contact.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, result)
}

// Update handles PUT /api/v1/contacts/:id
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, contact.ErrContactNotFound)
		return
	}

	var req contact.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete handles DELETE /api/v1/contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, contact.ErrContactNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Deleted(c)
}
