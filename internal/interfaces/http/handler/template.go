package handler

import (
	"github.com/gin-gonic/gin"

	applabeling "github.com/sellerdesk/backend/internal/application/labeling"
	"github.com/sellerdesk/backend/internal/interfaces/http/middleware"
)

// TemplateHandler exposes label template and element layout endpoints
type TemplateHandler struct {
	BaseHandler
	service *applabeling.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler
func NewTemplateHandler(service *applabeling.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// ListTemplates returns all templates, newest first
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.service.ListTemplates(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, templates)
}

// GetTemplate returns one template
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	template, err := h.service.GetTemplate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, template)
}

// CreateTemplate creates a template with default geometry
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req applabeling.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	template, err := h.service.CreateTemplate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, template)
}

// UpdateTemplate applies a partial update
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	var req applabeling.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	template, err := h.service.UpdateTemplate(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, template)
}

// DeleteTemplate removes a non-default template
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	if err := h.service.DeleteTemplate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMessage(c, nil, "템플릿이 삭제되었습니다")
}

// DuplicateTemplate copies a template and its layout
func (h *TemplateHandler) DuplicateTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	template, err := h.service.DuplicateTemplate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, template)
}

// SetDefaultTemplate makes one template the default
func (h *TemplateHandler) SetDefaultTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	if err := h.service.SetDefaultTemplate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMessage(c, nil, "기본 템플릿이 변경되었습니다")
}

// ListElements returns a template's element layout
func (h *TemplateHandler) ListElements(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	elements, err := h.service.ListElements(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, elements)
}

// AddElement places an element on a template
func (h *TemplateHandler) AddElement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	var req applabeling.AddElementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	element, err := h.service.AddElement(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, element)
}

// MoveElement repositions an element
func (h *TemplateHandler) MoveElement(c *gin.Context) {
	id, ok := parseIDParam(c, "elementId")
	if !ok {
		h.BadRequest(c, "Invalid element ID")
		return
	}

	var req applabeling.MoveElementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	element, err := h.service.MoveElement(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, element)
}

// UpdateElement applies a partial element update
func (h *TemplateHandler) UpdateElement(c *gin.Context) {
	id, ok := parseIDParam(c, "elementId")
	if !ok {
		h.BadRequest(c, "Invalid element ID")
		return
	}

	var req applabeling.UpdateElementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	element, err := h.service.UpdateElement(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, element)
}

// RemoveElement deletes an element
func (h *TemplateHandler) RemoveElement(c *gin.Context) {
	id, ok := parseIDParam(c, "elementId")
	if !ok {
		h.BadRequest(c, "Invalid element ID")
		return
	}

	if err := h.service.RemoveElement(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
