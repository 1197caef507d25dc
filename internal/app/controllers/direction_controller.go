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

// DirectionController serves the public and admin direction endpoints.
type DirectionController struct {
	directionService *services.DirectionService
	cfg              admin.EntityConfig
}

// NewDirectionController creates a new DirectionController.
func NewDirectionController(directionService *services.DirectionService, cfg admin.EntityConfig) *DirectionController {
	return &DirectionController{directionService: directionService, cfg: cfg}
}

// List returns a page of active directions ordered by title, each with its
// active mentors nested.
func (c *DirectionController) List(ctx *gin.Context) {
	params, err := buildPublicListParams(c.cfg, ctx, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	result, err := c.directionService.List(ctx, params, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Get returns a single active direction with its active mentors nested.
func (c *DirectionController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	direction, err := c.directionService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, direction)
}

// AdminList returns a page of directions for the back office with search,
// facet filters and the computed mentor count.
func (c *DirectionController) AdminList(ctx *gin.Context) {
	params, err := buildAdminListParams(c.cfg, ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	result, err := c.directionService.ListAdmin(ctx, params, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// AdminGet returns a single direction with all of its mentors.
func (c *DirectionController) AdminGet(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	direction, err := c.directionService.GetAdmin(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, direction)
}

// Create creates a new direction.
func (c *DirectionController) Create(ctx *gin.Context) {
	var req dto.CreateDirectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	direction, err := c.directionService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, direction)
}

// Update replaces the mutable fields of a direction.
func (c *DirectionController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateDirectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	direction, err := c.directionService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, direction)
}

// Delete removes a direction. Its mentors survive with their direction
// reference cleared.
func (c *DirectionController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.directionService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Direction deleted"})
}

// Bulk applies a bulk action to a set of directions.
func (c *DirectionController) Bulk(ctx *gin.Context) {
	req, err := bindBulkRequest(c.cfg, ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.directionService.Bulk(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
