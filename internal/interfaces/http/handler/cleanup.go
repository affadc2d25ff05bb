package handler

import (
	"github.com/gin-gonic/gin"

	applabeling "github.com/sellerdesk/backend/internal/application/labeling"
	"github.com/sellerdesk/backend/internal/interfaces/http/middleware"
	"github.com/sellerdesk/backend/internal/interfaces/http/router"
)

// CleanupHandler exposes cleanup rule and sanitize preview endpoints
type CleanupHandler struct {
	BaseHandler
	service *applabeling.CleanupService
}

// NewCleanupHandler creates a new CleanupHandler
func NewCleanupHandler(service *applabeling.CleanupService) *CleanupHandler {
	return &CleanupHandler{service: service}
}

// ListRules returns all cleanup rules in application order
func (h *CleanupHandler) ListRules(c *gin.Context) {
	rules, err := h.service.ListRules(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rules)
}

// CreateRule appends a cleanup rule
func (h *CleanupHandler) CreateRule(c *gin.Context) {
	var req applabeling.CreateCleanupRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	rule, err := h.service.CreateRule(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rule)
}

// UpdateRule changes a rule's keyword, description or enabled flag
func (h *CleanupHandler) UpdateRule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid rule ID")
		return
	}

	var req applabeling.UpdateCleanupRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	rule, err := h.service.UpdateRule(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rule)
}

// DeleteRule removes a rule
func (h *CleanupHandler) DeleteRule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid rule ID")
		return
	}

	if err := h.service.DeleteRule(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMessage(c, nil, "정제 규칙이 삭제되었습니다")
}

// Preview shows what the sanitizer would do to a raw name
func (h *CleanupHandler) Preview(c *gin.Context) {
	var req applabeling.SanitizePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	preview, err := h.service.Preview(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, preview)
}

// CleanupRoutes creates the route group for cleanup rule endpoints
func CleanupRoutes(handler *CleanupHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/cleanup-rules")

	group.GET("", handler.ListRules)
	group.POST("", handler.CreateRule)
	group.PATCH("/:id", handler.UpdateRule)
	group.DELETE("/:id", handler.DeleteRule)
	group.POST("/preview", handler.Preview)

	return group
}
