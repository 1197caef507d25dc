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

// HeroController serves the public and admin hero award endpoints.
type HeroController struct {
	heroService *services.HeroService
	cfg         admin.EntityConfig
}

// NewHeroController creates a new HeroController.
func NewHeroController(heroService *services.HeroService, cfg admin.EntityConfig) *HeroController {
	return &HeroController{heroService: heroService, cfg: cfg}
}

// List returns a page of active hero awards, newest first, optionally
// narrowed by the type and month query parameters.
func (c *HeroController) List(ctx *gin.Context) {
	params, err := buildPublicListParams(c.cfg, ctx, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	result, err := c.heroService.List(ctx, params, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Get returns a single active hero award.
func (c *HeroController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	hero, err := c.heroService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, hero)
}

// AdminList returns a page of hero awards for the back office with search
// and facet filters over type, month and active status.
func (c *HeroController) AdminList(ctx *gin.Context) {
	params, err := buildAdminListParams(c.cfg, ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	result, err := c.heroService.List(ctx, params, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// AdminGet returns a single hero award regardless of active status.
func (c *HeroController) AdminGet(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	hero, err := c.heroService.GetAdmin(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, hero)
}

// Create awards a user as hero of a month.
func (c *HeroController) Create(ctx *gin.Context) {
	var req dto.CreateHeroRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	hero, err := c.heroService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, hero)
}

// Update replaces the mutable fields of a hero award.
func (c *HeroController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateHeroRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	hero, err := c.heroService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, hero)
}

// Delete removes a hero award.
func (c *HeroController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.heroService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Hero deleted"})
}

// Bulk applies a bulk action to a set of hero awards.
func (c *HeroController) Bulk(ctx *gin.Context) {
	req, err := bindBulkRequest(c.cfg, ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.heroService.Bulk(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
