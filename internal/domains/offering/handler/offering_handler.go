package handler

import (
	"github.com/gin-gonic/gin"

	"orgsite-backend/internal/domains/offering"
	"orgsite-backend/internal/shared/response"
	"orgsite-backend/internal/shared/utils"
)

type OfferingHandler struct {
	service offering.Service
}

func NewOfferingHandler(service offering.Service) *OfferingHandler {
	return &OfferingHandler{service: service}
}

// List handles GET /api/v1/services
func (h *OfferingHandler) List(c *gin.Context) {
	offerings, err := h.service.List(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, offerings)
}

// Get handles GET /api/v1/services/:id
func (h *OfferingHandler) Get(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, offering.ErrOfferingNotFound)
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, result)
}

// Create handles POST /api/v1/services
func (h *OfferingHandler) Create(c *gin.Context) {
	var req offering.CreateOfferingRequest
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

// Update handles PUT /api/v1/services/:id
func (h *OfferingHandler) Update(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, offering.ErrOfferingNotFound)
		return
	}

	var req offering.UpdateOfferingRequest
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

// Delete handles DELETE /api/v1/services/:id
func (h *OfferingHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, offering.ErrOfferingNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Deleted(c)
}
