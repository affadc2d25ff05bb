package handler

import (
	"github.com/sellerdesk/backend/internal/interfaces/http/router"
)

// TemplateRoutes creates the route group for template and element endpoints
func TemplateRoutes(handler *TemplateHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/templates")

	group.GET("", handler.ListTemplates)
	group.POST("", handler.CreateTemplate)
	group.GET("/:id", handler.GetTemplate)
	group.PATCH("/:id", handler.UpdateTemplate)
	group.DELETE("/:id", handler.DeleteTemplate)
	group.POST("/:id/duplicate", handler.DuplicateTemplate)
	group.POST("/:id/default", handler.SetDefaultTemplate)

	// Element layout
	group.GET("/:id/elements", handler.ListElements)
	group.POST("/:id/elements", handler.AddElement)

	return group
}

// ElementRoutes creates the route group for element-addressed endpoints
func ElementRoutes(handler *TemplateHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/elements")

	group.POST("/:elementId/move", handler.MoveElement)
	group.PATCH("/:elementId", handler.UpdateElement)
	group.DELETE("/:elementId", handler.RemoveElement)

	return group
}
