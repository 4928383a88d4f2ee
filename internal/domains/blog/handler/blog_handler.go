package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"orgsite-backend/internal/domains/blog"
	"orgsite-backend/internal/shared/response"
	"orgsite-backend/internal/shared/utils"
)

type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(service blog.Service) *BlogHandler {
	return &BlogHandler{service: service}
}

// List handles GET /api/v1/blog?published=true
func (h *BlogHandler) List(c *gin.Context) {
	var filter blog.ListFilter
	if raw := c.Query("published"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "published must be a boolean")
			return
		}
		filter.PublishedOnly = published
	}

	posts, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, posts)
}

// Get handles GET /api/v1/blog/:id
func (h *BlogHandler) Get(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, blog.ErrPostNotFound)
		return
	}

	post, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, post)
}

// GetBySlug handles GET /api/v1/blog/slug/:slug
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if !utils.IsValidSlug(slug) {
		response.HandleError(c, blog.ErrPostNotFound)
		return
	}

	post, err := h.service.GetPublishedBySlug(c.Request.Context(), slug)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, post)
}

// Create handles POST /api/v1/blog
func (h *BlogHandler) Create(c *gin.Context) {
	var req blog.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	post, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, post)
}

// Update handles PUT /api/v1/blog/:id
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, blog.ErrPostNotFound)
		return
	}

	var req blog.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	post, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, post)
}

// Delete handles DELETE /api/v1/blog/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, blog.ErrPostNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Deleted(c)
}
