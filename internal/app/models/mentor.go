package models

import "time"

// Mentor represents a teacher/mentor, optionally attached to a direction.
// Deleting the direction keeps the mentor and nulls the reference.
type Mentor struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name"`
	DirectionID *int64    `json:"direction"`
	Image       *string   `json:"image"`
	Description *string   `json:"description"`
	Bio         *string   `json:"bio"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`

	// DirectionTitle is joined from the directions table for serialization
	DirectionTitle *string `json:"direction_title,omitempty"`
}
