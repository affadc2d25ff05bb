package handler

import (
	"github.com/gin-gonic/gin"

	applabeling "github.com/sellerdesk/backend/internal/application/labeling"
	"github.com/sellerdesk/backend/internal/interfaces/http/middleware"
	"github.com/sellerdesk/backend/internal/interfaces/http/router"
)

// CodeFormatHandler exposes code format endpoints
type CodeFormatHandler struct {
	BaseHandler
	service *applabeling.CodeFormatService
}

// NewCodeFormatHandler creates a new CodeFormatHandler
func NewCodeFormatHandler(service *applabeling.CodeFormatService) *CodeFormatHandler {
	return &CodeFormatHandler{service: service}
}

// ListFormats returns all code formats
func (h *CodeFormatHandler) ListFormats(c *gin.Context) {
	formats, err := h.service.ListFormats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, formats)
}

// CreateFormat creates a code format
func (h *CodeFormatHandler) CreateFormat(c *gin.Context) {
	var req applabeling.CreateCodeFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	format, err := h.service.CreateFormat(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, format)
}

// UpdateFormat renames a format or changes its pattern
func (h *CodeFormatHandler) UpdateFormat(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid format ID")
		return
	}

	var req applabeling.UpdateCodeFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	format, err := h.service.UpdateFormat(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, format)
}

// DeleteFormat removes a format
func (h *CodeFormatHandler) DeleteFormat(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid format ID")
		return
	}

	if err := h.service.DeleteFormat(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMessage(c, nil, "코드 형식이 삭제되었습니다")
}

// GenerateNext renders the next code and advances the sequence
func (h *CodeFormatHandler) GenerateNext(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid format ID")
		return
	}

	var req applabeling.GenerateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	code, err := h.service.GenerateNext(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, code)
}

// CodeFormatRoutes creates the route group for code format endpoints
func CodeFormatRoutes(handler *CodeFormatHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/code-formats")

	group.GET("", handler.ListFormats)
	group.POST("", handler.CreateFormat)
	group.PATCH("/:id", handler.UpdateFormat)
	group.DELETE("/:id", handler.DeleteFormat)
	group.POST("/:id/generate", handler.GenerateNext)

	return group
}
