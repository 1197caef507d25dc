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

// NewsController serves the public and admin news endpoints. Admin writes
// arrive as multipart forms so a cover image can ride along.
type NewsController struct {
	newsService *services.NewsService
	cfg         admin.EntityConfig
}

// NewNewsController creates a new NewsController.
func NewNewsController(newsService *services.NewsService, cfg admin.EntityConfig) *NewsController {
	return &NewsController{newsService: newsService, cfg: cfg}
}

// List returns a page of active news articles, newest first.
func (c *NewsController) List(ctx *gin.Context) {
	params, err := buildPublicListParams(c.cfg, ctx, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	result, err := c.newsService.List(ctx, params, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Get returns a single active news article.
func (c *NewsController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	news, err := c.newsService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, news)
}

// AdminList returns a page of news articles for the back office with search
// and facet filters.
func (c *NewsController) AdminList(ctx *gin.Context) {
	params, err := buildAdminListParams(c.cfg, ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	result, err := c.newsService.List(ctx, params, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// AdminGet returns a single news article regardless of active status.
func (c *NewsController) AdminGet(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	news, err := c.newsService.GetAdmin(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, news)
}

// Create creates a news article from a multipart form with an optional
// image part.
func (c *NewsController) Create(ctx *gin.Context) {
	var req dto.CreateNewsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	image, _ := ctx.FormFile("image")

	news, err := c.newsService.Create(ctx, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, news)
}

// Update replaces the mutable fields of a news article. A new image part
// replaces the stored image.
func (c *NewsController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateNewsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	image, _ := ctx.FormFile("image")

	news, err := c.newsService.Update(ctx, id, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, news)
}

// Delete removes a news article and its stored image.
func (c *NewsController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.newsService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "News deleted"})
}

// Bulk applies a bulk action to a set of news articles. Duplicate clones
// each addressed article under a copy-marked title.
func (c *NewsController) Bulk(ctx *gin.Context) {
	req, err := bindBulkRequest(c.cfg, ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.newsService.Bulk(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
