package handler

import (
	"github.com/gin-gonic/gin"

	applabeling "github.com/sellerdesk/backend/internal/application/labeling"
	"github.com/sellerdesk/backend/internal/interfaces/http/middleware"
	"github.com/sellerdesk/backend/internal/interfaces/http/router"
)

// ShipperHandler exposes shipper, barcode rule and selection endpoints
type ShipperHandler struct {
	BaseHandler
	service *applabeling.RuleService
}

// NewShipperHandler creates a new ShipperHandler
func NewShipperHandler(service *applabeling.RuleService) *ShipperHandler {
	return &ShipperHandler{service: service}
}

// ListShippers returns all shippers with their rules
func (h *ShipperHandler) ListShippers(c *gin.Context) {
	shippers, err := h.service.ListShippers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, shippers)
}

// GetShipper returns one shipper
func (h *ShipperHandler) GetShipper(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid shipper ID")
		return
	}

	shipper, err := h.service.GetShipper(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, shipper)
}

// CreateShipper registers a shipper
func (h *ShipperHandler) CreateShipper(c *gin.Context) {
	var req applabeling.CreateShipperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	shipper, err := h.service.CreateShipper(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, shipper)
}

// UpdateShipper changes a shipper's name or active flag
func (h *ShipperHandler) UpdateShipper(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid shipper ID")
		return
	}

	var req applabeling.UpdateShipperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	shipper, err := h.service.UpdateShipper(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, shipper)
}

// DeleteShipper removes a shipper and its rules
func (h *ShipperHandler) DeleteShipper(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid shipper ID")
		return
	}

	if err := h.service.DeleteShipper(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMessage(c, nil, "판매처가 삭제되었습니다")
}

// AddRule attaches a barcode rule to a shipper
func (h *ShipperHandler) AddRule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid shipper ID")
		return
	}

	var req applabeling.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	rule, err := h.service.AddRule(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rule)
}

// UpdateRule changes a rule
func (h *ShipperHandler) UpdateRule(c *gin.Context) {
	shipperID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid shipper ID")
		return
	}
	ruleID, ok := parseIDParam(c, "ruleId")
	if !ok {
		h.BadRequest(c, "Invalid rule ID")
		return
	}

	var req applabeling.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	rule, err := h.service.UpdateRule(c.Request.Context(), shipperID, ruleID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rule)
}

// RemoveRule detaches a rule
func (h *ShipperHandler) RemoveRule(c *gin.Context) {
	shipperID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid shipper ID")
		return
	}
	ruleID, ok := parseIDParam(c, "ruleId")
	if !ok {
		h.BadRequest(c, "Invalid rule ID")
		return
	}

	if err := h.service.RemoveRule(c.Request.Context(), shipperID, ruleID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// SelectTemplate evaluates the shipper's rules against a product
func (h *ShipperHandler) SelectTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid shipper ID")
		return
	}

	var req applabeling.SelectTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	selection, err := h.service.SelectTemplate(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, selection)
}

// ShipperRoutes creates the route group for shipper and rule endpoints
func ShipperRoutes(handler *ShipperHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/shippers")

	group.GET("", handler.ListShippers)
	group.POST("", handler.CreateShipper)
	group.GET("/:id", handler.GetShipper)
	group.PATCH("/:id", handler.UpdateShipper)
	group.DELETE("/:id", handler.DeleteShipper)

	// Barcode rules
	group.POST("/:id/rules", handler.AddRule)
	group.PATCH("/:id/rules/:ruleId", handler.UpdateRule)
	group.DELETE("/:id/rules/:ruleId", handler.RemoveRule)

	// Rule-based template selection
	group.POST("/:id/select-template", handler.SelectTemplate)

	return group
}
