package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/otabek/juniorhub/internal/app/admin"
)

// AdminController serves admin endpoints that are not tied to one entity.
type AdminController struct {
	registry *admin.Registry
}

// NewAdminController creates a new AdminController.
func NewAdminController(registry *admin.Registry) *AdminController {
	return &AdminController{registry: registry}
}

// adminEntitySchema is the JSON shape of one entity's admin configuration.
type adminEntitySchema struct {
	Name           string   `json:"name"`
	DisplayColumns []string `json:"display_columns"`
	SearchFields   []string `json:"search_fields"`
	FilterFields   []string `json:"filter_fields"`
	DefaultOrder   string   `json:"default_order"`
	BulkActions    []string `json:"bulk_actions"`
}

// Schema describes every managed entity so the back-office client can
// render its list views and action menus.
func (c *AdminController) Schema(ctx *gin.Context) {
	entities := c.registry.All()
	out := make(map[string]adminEntitySchema, len(entities))
	for name, cfg := range entities {
		out[name] = adminEntitySchema{
			Name:           cfg.Name,
			DisplayColumns: cfg.DisplayColumns,
			SearchFields:   cfg.SearchFields,
			FilterFields:   cfg.FilterFields,
			DefaultOrder:   cfg.DefaultOrder,
			BulkActions:    cfg.BulkActions,
		}
	}
	ctx.JSON(http.StatusOK, out)
}
