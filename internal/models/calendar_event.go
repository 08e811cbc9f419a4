package model

import "time"

type CalendarEvent struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID       string    `gorm:"size:64;not null;index" json:"owner_id"`
	Title         string    `gorm:"not null" json:"title"`
	Description   string    `json:"description"`
	StartsAt      time.Time `gorm:"not null;index" json:"starts_at"`
	EndsAt        time.Time `gorm:"not null" json:"ends_at"`
	AllDay        bool      `gorm:"not null;default:false" json:"all_day"`
	GoogleEventID string    `gorm:"size:128" json:"google_event_id,omitempty"`
	Version       uint      `gorm:"not null;default:1" json:"version"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GoogleToken holds the OAuth2 credentials an owner granted for calendar sync.
type GoogleToken struct {
	OwnerID      string    `gorm:"primaryKey;size:64" json:"-"`
	AccessToken  string    `gorm:"not null" json:"-"`
	RefreshToken string    `json:"-"`
	TokenType    string    `json:"-"`
	Expiry       time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
