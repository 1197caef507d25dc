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

// MentorController serves the public and admin mentor endpoints. Admin
// writes arrive as multipart forms so a profile image can ride along.
type MentorController struct {
	mentorService *services.MentorService
	cfg           admin.EntityConfig
}

// NewMentorController creates a new MentorController.
func NewMentorController(mentorService *services.MentorService, cfg admin.EntityConfig) *MentorController {
	return &MentorController{mentorService: mentorService, cfg: cfg}
}

// List returns a page of active mentors ordered by full name, optionally
// narrowed by the direction query parameter.
func (c *MentorController) List(ctx *gin.Context) {
	params, err := buildPublicListParams(c.cfg, ctx, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	result, err := c.mentorService.List(ctx, params, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Get returns a single active mentor.
func (c *MentorController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	mentor, err := c.mentorService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mentor)
}

// AdminList returns a page of mentors for the back office with search and
// facet filters over direction and active status.
func (c *MentorController) AdminList(ctx *gin.Context) {
	params, err := buildAdminListParams(c.cfg, ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	result, err := c.mentorService.List(ctx, params, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// AdminGet returns a single mentor regardless of active status.
func (c *MentorController) AdminGet(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	mentor, err := c.mentorService.GetAdmin(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mentor)
}

// Create creates a new mentor from a multipart form with an optional image part.
func (c *MentorController) Create(ctx *gin.Context) {
	var req dto.CreateMentorRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	image, _ := ctx.FormFile("image")

	mentor, err := c.mentorService.Create(ctx, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, mentor)
}

// Update replaces the mutable fields of a mentor. A new image part replaces
// the stored image.
func (c *MentorController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateMentorRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	image, _ := ctx.FormFile("image")

	mentor, err := c.mentorService.Update(ctx, id, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mentor)
}

// Delete removes a mentor and its stored image.
func (c *MentorController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.mentorService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Mentor deleted"})
}

// Bulk applies a bulk action to a set of mentors.
func (c *MentorController) Bulk(ctx *gin.Context) {
	req, err := bindBulkRequest(c.cfg, ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.mentorService.Bulk(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
