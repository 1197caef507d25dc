package dto

import (
	"time"

	"github.com/otabek/juniorhub/internal/app/models"
)

// NewsResponse is the flat JSON shape of a news article.
type NewsResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     *string   `json:"image"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNewsResponse maps a news model to its JSON shape.
func NewNewsResponse(n *models.News, resolve ImageResolver) *NewsResponse {
	if n == nil {
		return nil
	}
	return &NewsResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Image:     resolve(n.Image),
		IsActive:  n.IsActive,
		CreatedAt: n.CreatedAt,
	}
}

// NewNewsResponseList maps a slice of news models.
func NewNewsResponseList(news []*models.News, resolve ImageResolver) []*NewsResponse {
	out := make([]*NewsResponse, 0, len(news))
	for _, n := range news {
		out = append(out, NewNewsResponse(n, resolve))
	}
	return out
}

// CreateNewsRequest carries the multipart form fields for creating a news
// article. The image arrives as a separate file part.
type CreateNewsRequest struct {
	Title    string `form:"title" binding:"required,max=200"`
	Content  string `form:"content" binding:"required"`
	IsActive *bool  `form:"is_active"`
}

// UpdateNewsRequest carries the mutable fields of a news article.
type UpdateNewsRequest struct {
	Title    string `form:"title" binding:"required,max=200"`
	Content  string `form:"content" binding:"required"`
	IsActive *bool  `form:"is_active"`
}
