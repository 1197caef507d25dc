package models

import "time"

// HeroType classifies a month hero award.
type HeroType string

const (
	HeroTypeStudent HeroType = "student"
	HeroTypeTeacher HeroType = "teacher"
)

// IsValid reports whether the hero type is one of the known values.
func (t HeroType) IsValid() bool {
	return t == HeroTypeStudent || t == HeroTypeTeacher
}

// MonthHero represents a "hero of the month" award linking a user to a month
// with a role. A user can hold each hero type at most once per month.
type MonthHero struct {
	ID          int64     `json:"id"`
	MonthID     int64     `json:"month"`
	UserID      int64     `json:"-"`
	Type        HeroType  `json:"type"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`

	// MonthName and User are joined for serialization
	MonthName string `json:"month_name,omitempty"`
	User      *User  `json:"user,omitempty"`
}
