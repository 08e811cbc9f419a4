package model

import "time"

type Note struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID   string    `gorm:"size:64;not null;index" json:"owner_id"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `json:"body"`
	Pinned    bool      `gorm:"not null;default:false" json:"pinned"`
	Version   uint      `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
