package handler

import (
	"github.com/gin-gonic/gin"

	applabeling "github.com/sellerdesk/backend/internal/application/labeling"
	"github.com/sellerdesk/backend/internal/interfaces/http/middleware"
	"github.com/sellerdesk/backend/internal/interfaces/http/router"
)

// QueueHandler exposes print queue endpoints
type QueueHandler struct {
	BaseHandler
	service *applabeling.QueueService
}

// NewQueueHandler creates a new QueueHandler
func NewQueueHandler(service *applabeling.QueueService) *QueueHandler {
	return &QueueHandler{service: service}
}

// ListQueue returns the whole queue
func (h *QueueHandler) ListQueue(c *gin.Context) {
	items, err := h.service.ListQueue(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Enqueue adds a catalog selection to the queue
func (h *QueueHandler) Enqueue(c *gin.Context) {
	var req applabeling.EnqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.service.Enqueue(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMessage(c, result, result.Message)
}

// UpdateStatus sets the status on a selection of items
func (h *QueueHandler) UpdateStatus(c *gin.Context) {
	var req applabeling.UpdateQueueStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMessage(c, result, result.Message)
}

// UpdateQuantity changes one item's label count
func (h *QueueHandler) UpdateQuantity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid queue item ID")
		return
	}

	var req applabeling.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := h.service.UpdateQuantity(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Remove deletes a selection of items
func (h *QueueHandler) Remove(c *gin.Context) {
	var req applabeling.RemoveQueueItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.service.Remove(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMessage(c, result, result.Message)
}

// Clear empties the queue
func (h *QueueHandler) Clear(c *gin.Context) {
	result, err := h.service.Clear(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMessage(c, result, result.Message)
}

// QueueRoutes creates the route group for queue endpoints
func QueueRoutes(handler *QueueHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/queue")

	group.GET("", handler.ListQueue)
	group.POST("", handler.Enqueue)
	group.POST("/status", handler.UpdateStatus)
	group.PATCH("/:id/quantity", handler.UpdateQuantity)
	group.POST("/remove", handler.Remove)
	group.DELETE("", handler.Clear)

	return group
}
