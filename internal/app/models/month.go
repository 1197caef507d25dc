package models

import "time"

// Month represents a calendar or academic month of the program
// (e.g. "January 2025"). The name is unique across all months.
type Month struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`

	// Heroes holds the month's hero awards when loaded for serialization
	Heroes []*MonthHero `json:"heroes,omitempty"`
}
