package handler

import (
	"github.com/gin-gonic/gin"

	"orgsite-backend/internal/domains/recruitment"
	"orgsite-backend/internal/shared/response"
	"orgsite-backend/internal/shared/utils"
)

type RecruitmentHandler struct {
	service recruitment.Service
}

func NewRecruitmentHandler(service recruitment.Service) *RecruitmentHandler {
	return &RecruitmentHandler{service: service}
}

// GetCurrent handles GET /api/v1/recruitment
func (h *RecruitmentHandler) GetCurrent(c *gin.Context) {
	settings, err := h.service.GetCurrent(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, settings)
}

// Get handles GET /api/v1/recruitment/:id
func (h *RecruitmentHandler) Get(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, recruitment.ErrSettingsNotFound)
		return
	}
	settings, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, settings)
}

// Create handles POST /api/v1/recruitment
func (h *RecruitmentHandler) Create(c *gin.Context) {
	var req recruitment.CreateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	settings, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, settings)
}

// Update handles PUT /api/v1/recruitment/:id
func (h *RecruitmentHandler) Update(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, recruitment.ErrSettingsNotFound)
		return
	}

	var req recruitment.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	settings, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, settings)
}

// Delete handles DELETE /api/v1/recruitment/:id
func (h *RecruitmentHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, recruitment.ErrSettingsNotFound)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Deleted(c)
}
