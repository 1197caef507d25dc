package dto

import (
	"time"

	"github.com/otabek/juniorhub/internal/app/models"
)

// DirectionResponse is the JSON shape of a direction, including its full
// nested mentor list.
type DirectionResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	IsActive    bool              `json:"is_active"`
	Mentors     []*MentorResponse `json:"mentors"`
	CreatedAt   time.Time         `json:"created_at"`
}

// NewDirectionResponse maps a direction model to its JSON shape.
func NewDirectionResponse(d *models.Direction, resolve ImageResolver) *DirectionResponse {
	if d == nil {
		return nil
	}
	return &DirectionResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		IsActive:    d.IsActive,
		Mentors:     NewMentorResponseList(d.Mentors, resolve),
		CreatedAt:   d.CreatedAt,
	}
}

// NewDirectionResponseList maps a slice of direction models.
func NewDirectionResponseList(directions []*models.Direction, resolve ImageResolver) []*DirectionResponse {
	out := make([]*DirectionResponse, 0, len(directions))
	for _, d := range directions {
		out = append(out, NewDirectionResponse(d, resolve))
	}
	return out
}

// AdminDirectionResponse extends the direction shape with the computed
// active mentor count shown in admin list views.
type AdminDirectionResponse struct {
	DirectionResponse
	MentorCount int64 `json:"mentor_count"`
}

// CreateDirectionRequest carries the fields for creating a direction.
type CreateDirectionRequest struct {
	Title       string  `json:"title" binding:"required,max=150"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateDirectionRequest carries the mutable fields of a direction.
type UpdateDirectionRequest struct {
	Title       string  `json:"title" binding:"required,max=150"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}
