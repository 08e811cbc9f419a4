package dto

import (
	"time"

	"workbase.com/workbase/internal/constants"
)

// GuestSnapshot is what a guest session kept in browser local storage.
// Tasks are listed in board order within each category.
type GuestSnapshot struct {
	Tasks       []GuestTask       `json:"tasks" validate:"max=1000,dive"`
	Notes       []GuestNote       `json:"notes" validate:"max=1000,dive"`
	StickyNotes []GuestStickyNote `json:"sticky_notes" validate:"max=500,dive"`
}

type GuestTask struct {
	Title       string                 `json:"title" validate:"required,max=255"`
	Description string                 `json:"description" validate:"max=10000"`
	Category    constants.TaskCategory `json:"category" validate:"omitempty,oneof=todo inProgress done"`
	Priority    constants.Priority     `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type GuestNote struct {
	Title  string `json:"title" validate:"required,max=255"`
	Body   string `json:"body" validate:"max=100000"`
	Pinned bool   `json:"pinned"`
}

type GuestStickyNote struct {
	Content string  `json:"content" validate:"max=2000"`
	Color   string  `json:"color" validate:"omitempty,hexcolor"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width" validate:"gte=0"`
	Height  float64 `json:"height" validate:"gte=0"`

	// ExpiresAt is the absolute expiry the guest set. Notes already past it
	// are not imported.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type GuestImportResult struct {
	Tasks       int `json:"tasks"`
	Notes       int `json:"notes"`
	StickyNotes int `json:"sticky_notes"`
	Expired     int `json:"expired_sticky_notes"`
}
