package handler

import (
	"github.com/gin-gonic/gin"

	"orgsite-backend/internal/domains/policy"
	"orgsite-backend/internal/shared/response"
	"orgsite-backend/internal/shared/utils"
)

type PolicyHandler struct {
	service policy.Service
}

func NewPolicyHandler(service policy.Service) *PolicyHandler {
	return &PolicyHandler{service: service}
}

// List handles GET /api/v1/policies
func (h *PolicyHandler) List(c *gin.Context) {
	policies, err := h.service.List(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, policies)
}

// Get handles GET /api/v1/policies/:id
func (h *PolicyHandler) Get(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, policy.ErrPolicyNotFound)
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, result)
}

// Create handles POST /api/v1/policies
func (h *PolicyHandler) Create(c *gin.Context) {
	var req policy.CreatePolicyRequest
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

// Update handles PUT /api/v1/policies/:id
func (h *PolicyHandler) Update(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, policy.ErrPolicyNotFound)
		return
	}

	var req policy.UpdatePolicyRequest
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

// Delete handles DELETE /api/v1/policies/:id
func (h *PolicyHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.HandleError(c, policy.ErrPolicyNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Deleted(c)
}

// GetActive handles GET /api/v1/policies/active/:type
func (h *PolicyHandler) GetActive(c *gin.Context) {
	result, err := h.service.GetActive(c.Request.Context(), c.Param("type"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, result)
}
