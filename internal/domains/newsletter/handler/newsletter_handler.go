package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"orgsite-backend/internal/domains/newsletter"
	"orgsite-backend/internal/shared/response"
	"orgsite-backend/internal/shared/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type NewsletterHandler struct {
	service newsletter.Service
}

func NewNewsletterHandler(service newsletter.Service) *NewsletterHandler {
	return &NewsletterHandler{service: service}
}

// Subscribe handles POST /api/v1/newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req newsletter.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, sub)
}

// Unsubscribe handles POST /api/v1/newsletter/unsubscribe
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req newsletter.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	sub, err := h.service.Unsubscribe(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, sub)
}

// List handles GET /admin/newsletter
func (h *NewsletterHandler) List(c *gin.Context) {
	subs, err := h.service.List(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, subs)
}

// Get handles GET /admin/newsletter/:id
func (h *NewsletterHandler) Get(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, newsletter.ErrSubscriberNotFound)
		return
	}

	sub, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, sub)
}

// Delete handles DELETE /admin/newsletter/:id
func (h *NewsletterHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, newsletter.ErrSubscriberNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Deleted(c)
}

// Export handles GET /admin/newsletter/export
func (h *NewsletterHandler) Export(c *gin.Context) {
	f, err := h.service.Export(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("subscribers_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(200)

	if err := f.Write(c.Writer); err != nil {
		log.Error().Err(err).Msg("failed to stream subscriber export")
	}
}
