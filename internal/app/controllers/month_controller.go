package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/otabek/juniorhub/internal/app/admin"
	"github.com/otabek/juniorhub/internal/app/models/dto"
	"github.com/otabek/juniorhub/internal/app/services"
	"github.com/otabek/juniorhub/internal/middleware"
	"github.com/otabek/juniorhub/internal/pkg/helpers"
)

// MonthController serves the public and admin month endpoints.
type MonthController struct {
	monthService *services.MonthService
	cfg          admin.EntityConfig
}

// NewMonthController creates a new MonthController.
func NewMonthController(monthService *services.MonthService, cfg admin.EntityConfig) *MonthController {
	return &MonthController{monthService: monthService, cfg: cfg}
}

// List returns a page of months with their active heroes nested. Months are
// listed regardless of active status.
func (c *MonthController) List(ctx *gin.Context) {
	params, err := buildPublicListParams(c.cfg, ctx, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	result, err := c.monthService.List(ctx, params, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Get returns a single month with its active heroes nested.
func (c *MonthController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	month, err := c.monthService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, month)
}

// AdminList returns a page of months for the back office with search,
// facet filters and the computed hero count.
func (c *MonthController) AdminList(ctx *gin.Context) {
	params, err := buildAdminListParams(c.cfg, ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	result, err := c.monthService.ListAdmin(ctx, params, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// AdminGet returns a single month with all of its heroes.
func (c *MonthController) AdminGet(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	month, err := c.monthService.GetAdmin(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, month)
}

// Create creates a new month.
func (c *MonthController) Create(ctx *gin.Context) {
	var req dto.CreateMonthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	month, err := c.monthService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, month)
}

// Update replaces the mutable fields of a month.
func (c *MonthController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateMonthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	month, err := c.monthService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, month)
}

// Delete removes a month and its hero awards.
func (c *MonthController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.monthService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Month deleted"})
}

// Bulk applies a bulk action to a set of months.
func (c *MonthController) Bulk(ctx *gin.Context) {
	req, err := bindBulkRequest(c.cfg, ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.monthService.Bulk(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
