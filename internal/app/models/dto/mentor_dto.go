package dto

import (
	"time"

	"github.com/otabek/juniorhub/internal/app/models"
)

// ImageResolver turns a stored image path into a client-resolvable URL.
// It returns nil when no image is attached.
type ImageResolver func(path *string) *string

// MentorResponse is the JSON shape of a mentor, carrying the raw direction
// id alongside the flattened nullable direction_title.
type MentorResponse struct {
	ID             int64     `json:"id"`
	FullName       string    `json:"full_name"`
	DirectionID    *int64    `json:"direction"`
	DirectionTitle *string   `json:"direction_title"`
	Image          *string   `json:"image"`
	Description    *string   `json:"description"`
	Bio            *string   `json:"bio"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewMentorResponse maps a mentor model to its JSON shape.
func NewMentorResponse(m *models.Mentor, resolve ImageResolver) *MentorResponse {
	if m == nil {
		return nil
	}
	return &MentorResponse{
		ID:             m.ID,
		FullName:       m.FullName,
		DirectionID:    m.DirectionID,
		DirectionTitle: m.DirectionTitle,
		Image:          resolve(m.Image),
		Description:    m.Description,
		Bio:            m.Bio,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
}

// NewMentorResponseList maps a slice of mentor models.
func NewMentorResponseList(mentors []*models.Mentor, resolve ImageResolver) []*MentorResponse {
	out := make([]*MentorResponse, 0, len(mentors))
	for _, m := range mentors {
		out = append(out, NewMentorResponse(m, resolve))
	}
	return out
}

// CreateMentorRequest carries the multipart form fields for creating a
// mentor. The image arrives as a separate file part.
type CreateMentorRequest struct {
	FullName    string  `form:"full_name" binding:"required,max=150"`
	DirectionID *int64  `form:"direction"`
	Description *string `form:"description"`
	Bio         *string `form:"bio"`
	IsActive    *bool   `form:"is_active"`
}

// UpdateMentorRequest carries the mutable fields of a mentor.
type UpdateMentorRequest struct {
	FullName    string  `form:"full_name" binding:"required,max=150"`
	DirectionID *int64  `form:"direction"`
	Description *string `form:"description"`
	Bio         *string `form:"bio"`
	IsActive    *bool   `form:"is_active"`
}
