package model

import "time"

type StickyNote struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	OwnerID   string     `gorm:"size:64;not null;index" json:"owner_id"`
	Content   string     `json:"content"`
	Color     string     `gorm:"size:16;not null" json:"color"`
	X         float64    `gorm:"not null" json:"x"`
	Y         float64    `gorm:"not null" json:"y"`
	Width     float64    `gorm:"not null" json:"width"`
	Height    float64    `gorm:"not null" json:"height"`
	Z         int        `gorm:"not null" json:"z"`
	ExpiresAt *time.Time `gorm:"index" json:"expires_at,omitempty"`
	Version   uint       `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (s *StickyNote) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !s.ExpiresAt.After(now)
}
