package dto

import (
	"time"

	"workbase.com/workbase/internal/constants"
)

type CreateTaskRequest struct {
	Title       string             `json:"title" validate:"required,max=255"`
	Description string             `json:"description" validate:"max=10000"`
	Priority    constants.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueAt       *time.Time         `json:"due_at"`
}

// UpdateTaskRequest carries the version the client last saw. Nil fields are
// left unchanged.
type UpdateTaskRequest struct {
	Version     uint                `json:"version" validate:"required"`
	Title       *string             `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string             `json:"description" validate:"omitempty,max=10000"`
	Priority    *constants.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueAt       *time.Time          `json:"due_at"`
	ClearDue    bool                `json:"clear_due"`
}

type MoveTaskRequest struct {
	Category constants.TaskCategory `json:"category" validate:"required,oneof=todo inProgress done"`
	Index    int                    `json:"index"`
}

type CreateSubtaskRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

type ToggleSubtaskRequest struct {
	Done bool `json:"done"`
}
