package dto

import (
	"time"

	"github.com/otabek/juniorhub/internal/app/models"
)

// MonthResponse is the JSON shape of a month, including its full nested
// hero list rather than just ids.
type MonthResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	IsActive    bool            `json:"is_active"`
	Heroes      []*HeroResponse `json:"heroes"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewMonthResponse maps a month model to its JSON shape.
func NewMonthResponse(m *models.Month) *MonthResponse {
	if m == nil {
		return nil
	}
	return &MonthResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		Heroes:      NewHeroResponseList(m.Heroes),
		CreatedAt:   m.CreatedAt,
	}
}

// NewMonthResponseList maps a slice of month models.
func NewMonthResponseList(months []*models.Month) []*MonthResponse {
	out := make([]*MonthResponse, 0, len(months))
	for _, m := range months {
		out = append(out, NewMonthResponse(m))
	}
	return out
}

// AdminMonthResponse extends the month shape with the computed active hero
// count shown in admin list views.
type AdminMonthResponse struct {
	MonthResponse
	HeroCount int64 `json:"hero_count"`
}

// CreateMonthRequest carries the fields for creating a month.
type CreateMonthRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateMonthRequest carries the mutable fields of a month.
type UpdateMonthRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}
