package model

import "time"

// Session is a timed focus session, optionally attached to a task.
type Session struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	OwnerID     string     `gorm:"size:64;not null;index;uniqueIndex:idx_sessions_open_owner,where:ended_at IS NULL" json:"owner_id"`
	TaskID      *string    `gorm:"size:36;index" json:"task_id,omitempty"`
	StartedAt   time.Time  `gorm:"not null" json:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	DurationSec int64      `gorm:"not null;default:0" json:"duration_sec"`
	CreatedAt   time.Time  `json:"created_at"`
}

type SessionStat struct {
	TaskID   *string `json:"task_id"`
	TotalSec int64   `json:"total_sec"`
	Sessions int64   `json:"sessions"`
}
