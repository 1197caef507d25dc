package models

import "time"

// Direction represents a study or teaching direction (e.g. Frontend, Backend, Design).
type Direction struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`

	// Mentors holds the direction's mentors when loaded for serialization
	Mentors []*Mentor `json:"mentors,omitempty"`
}
