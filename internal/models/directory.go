package model

import "time"

type Employee struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"size:254;not null;uniqueIndex" json:"email"`
	Title      string    `json:"title"`
	Department string    `gorm:"index" json:"department"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Version    uint      `gorm:"not null;default:1" json:"version"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Kudos struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	FromID       string    `gorm:"size:64;not null" json:"from_id"`
	ToEmployeeID string    `gorm:"size:36;not null;index" json:"to_employee_id"`
	Message      string    `gorm:"not null" json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

type Announcement struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	AuthorID  string    `gorm:"size:64;not null" json:"author_id"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `json:"body"`
	Pinned    bool      `gorm:"not null;default:false" json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
}
