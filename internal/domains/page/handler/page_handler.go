package handler

import (
	"github.com/gin-gonic/gin"

	"orgsite-backend/internal/domains/page"
	"orgsite-backend/internal/shared/response"
)

type PageHandler struct {
	service page.Service
}

func NewPageHandler(service page.Service) *PageHandler {
	return &PageHandler{service: service}
}

// Home handles GET /api/v1/pages/home
func (h *PageHandler) Home(c *gin.Context) {
	doc, err := h.service.Home(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, doc)
}

// Recruitment handles GET /api/v1/pages/recruitment
func (h *PageHandler) Recruitment(c *gin.Context) {
	doc, err := h.service.Recruitment(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, doc)
}

// Dashboard handles GET /admin
func (h *PageHandler) Dashboard(c *gin.Context) {
	doc, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, doc)
}

// AdminSettings handles GET /admin/settings
func (h *PageHandler) AdminSettings(c *gin.Context) {
	doc, err := h.service.AdminSettings(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, doc)
}
