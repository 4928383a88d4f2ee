package handler

import (
	"github.com/gin-gonic/gin"

	"orgsite-backend/internal/domains/homesection"
	"orgsite-backend/internal/shared/response"
	"orgsite-backend/internal/shared/utils"
)

type SectionHandler struct {
	service homesection.Service
}

func NewSectionHandler(service homesection.Service) *SectionHandler {
	return &SectionHandler{service: service}
}

// List handles GET /api/v1/home-sections
func (h *SectionHandler) List(c *gin.Context) {
	sections, err := h.service.List(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, sections)
}

// Get handles GET /api/v1/home-sections/:id
func (h *SectionHandler) Get(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, homesection.ErrSectionNotFound)
		return
	}

	section, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, section)
}

// Create handles POST /api/v1/home-sections
func (h *SectionHandler) Create(c *gin.Context) {
	var req homesection.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	section, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, section)
}

// BulkUpsert handles PUT /api/v1/home-sections
func (h *SectionHandler) BulkUpsert(c *gin.Context) {
	var reqs []homesection.CreateSectionRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.BulkUpsert(c.Request.Context(), reqs)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, result)
}

// Update handles PUT /api/v1/home-sections/:id
func (h *SectionHandler) Update(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, homesection.ErrSectionNotFound)
		return
	}

	var req homesection.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	section, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, section)
}

// Delete handles DELETE /api/v1/home-sections/:id
func (h *SectionHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, homesection.ErrSectionNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Deleted(c)
}
