package dto

import (
	"time"

	"github.com/otabek/juniorhub/internal/app/models"
)

// HeroResponse is the JSON shape of a month hero award. It carries the raw
// month id alongside the flattened month_name convenience field and the
// nested safe user object.
type HeroResponse struct {
	ID          int64         `json:"id"`
	MonthID     int64         `json:"month"`
	MonthName   string        `json:"month_name"`
	User        *UserResponse `json:"user"`
	Type        string        `json:"type"`
	Description *string       `json:"description"`
	IsActive    bool          `json:"is_active"`
	CreatedAt   time.Time     `json:"created_at"`
}

// NewHeroResponse maps a hero model to its JSON shape.
func NewHeroResponse(h *models.MonthHero) *HeroResponse {
	if h == nil {
		return nil
	}
	return &HeroResponse{
		ID:          h.ID,
		MonthID:     h.MonthID,
		MonthName:   h.MonthName,
		User:        NewUserResponse(h.User),
		Type:        string(h.Type),
		Description: h.Description,
		IsActive:    h.IsActive,
		CreatedAt:   h.CreatedAt,
	}
}

// NewHeroResponseList maps a slice of hero models.
func NewHeroResponseList(heroes []*models.MonthHero) []*HeroResponse {
	out := make([]*HeroResponse, 0, len(heroes))
	for _, h := range heroes {
		out = append(out, NewHeroResponse(h))
	}
	return out
}

// CreateHeroRequest carries the fields for creating a hero award.
type CreateHeroRequest struct {
	MonthID     int64   `json:"month" binding:"required"`
	UserID      int64   `json:"user" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=student teacher"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateHeroRequest carries the mutable fields of a hero award.
type UpdateHeroRequest struct {
	MonthID     int64   `json:"month" binding:"required"`
	UserID      int64   `json:"user" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=student teacher"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}
