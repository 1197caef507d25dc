package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/otabek/juniorhub/internal/app/admin"
	"github.com/otabek/juniorhub/internal/app/models"
	"github.com/otabek/juniorhub/internal/app/models/dto"
	"github.com/otabek/juniorhub/internal/app/repositories"
	"github.com/otabek/juniorhub/internal/pkg/apperrors"
)

const dateLayout = "2006-01-02"

// parseIDParam reads the :id path parameter. On failure it writes the error
// response and returns false.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "id must be a positive number").
			WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

// buildPublicListParams reads the exact-match facet filters allowed on a
// public list endpoint. activeOnly restricts the result to active rows;
// months are the one entity listed publicly regardless of status.
func buildPublicListParams(cfg admin.EntityConfig, ctx *gin.Context, activeOnly bool) (repositories.ListParams, error) {
	params := repositories.ListParams{ActiveOnly: activeOnly}
	if err := parseFacetFilters(cfg, ctx, &params); err != nil {
		return params, err
	}
	return params, nil
}

// buildAdminListParams reads the admin list query parameters allowed for the
// entity: free-text search, a created date range and the facet filters the
// entity configuration declares. A facet parameter the entity does not
// support is rejected rather than silently ignored.
func buildAdminListParams(cfg admin.EntityConfig, ctx *gin.Context) (repositories.ListParams, error) {
	params := repositories.ListParams{
		Search: ctx.Query("search"),
	}
	if err := parseFacetFilters(cfg, ctx, &params); err != nil {
		return params, err
	}

	if raw, present := ctx.GetQuery("created_from"); present {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			return params, apperrors.NewValidationError("created_from", "created_from must be a date in YYYY-MM-DD form")
		}
		params.CreatedFrom = &from
	}
	if raw, present := ctx.GetQuery("created_to"); present {
		day, err := time.Parse(dateLayout, raw)
		if err != nil {
			return params, apperrors.NewValidationError("created_to", "created_to must be a date in YYYY-MM-DD form")
		}
		// Inclusive of the whole named day.
		to := day.Add(24*time.Hour - time.Nanosecond)
		params.CreatedTo = &to
	}

	return params, nil
}

func parseFacetFilters(cfg admin.EntityConfig, ctx *gin.Context, params *repositories.ListParams) error {
	for _, facet := range []string{"is_active", "type", "month", "direction"} {
		raw, present := ctx.GetQuery(facet)
		if !present {
			continue
		}
		if !cfg.SupportsFilter(facet) {
			return apperrors.NewValidationError(facet, facet+" filter is not supported for "+cfg.Name)
		}

		switch facet {
		case "is_active":
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return apperrors.NewValidationError(facet, "is_active must be true or false")
			}
			params.IsActive = &v
		case "type":
			t := models.HeroType(raw)
			if !t.IsValid() {
				return apperrors.NewValidationError(facet, "type must be one of: student teacher")
			}
			params.Type = &t
		case "month":
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id < 1 {
				return apperrors.NewValidationError(facet, "month must be a positive number")
			}
			params.MonthID = &id
		case "direction":
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id < 1 {
				return apperrors.NewValidationError(facet, "direction must be a positive number")
			}
			params.DirectionID = &id
		}
	}

	return nil
}

// bindBulkRequest binds and validates a bulk action request against the
// entity configuration.
func bindBulkRequest(cfg admin.EntityConfig, ctx *gin.Context) (*dto.BulkActionRequest, error) {
	var req dto.BulkActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	if !cfg.SupportsBulkAction(req.Action) {
		return nil, apperrors.NewValidationError("action", "unsupported bulk action for "+cfg.Name+": "+req.Action)
	}
	return &req, nil
}
