package model

import (
	"time"

	"workbase.com/workbase/internal/constants"
)

type Task struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	OwnerID     string                 `gorm:"size:64;not null;index:idx_tasks_owner_category" json:"owner_id"`
	Title       string                 `gorm:"not null" json:"title"`
	Description string                 `json:"description"`
	Category    constants.TaskCategory `gorm:"type:varchar(20);not null;index:idx_tasks_owner_category" json:"category"`
	Position    int                    `gorm:"not null" json:"position"`
	Priority    constants.Priority     `gorm:"type:varchar(10);not null" json:"priority"`
	DueAt       *time.Time             `json:"due_at,omitempty"`
	Version     uint                   `gorm:"not null;default:1" json:"version"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	Subtasks    []Subtask              `gorm:"constraint:OnDelete:CASCADE" json:"subtasks"`
}

type Subtask struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	TaskID    string    `gorm:"size:36;not null;index" json:"task_id"`
	Title     string    `gorm:"not null" json:"title"`
	Done      bool      `gorm:"not null;default:false" json:"done"`
	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// Board is an owner's tasks grouped by category, each list ordered by position.
type Board struct {
	Todo       []Task `json:"todo"`
	InProgress []Task `json:"inProgress"`
	Done       []Task `json:"done"`
}

func (b *Board) List(category constants.TaskCategory) []Task {
	switch category {
	case constants.CategoryInProgress:
		return b.InProgress
	case constants.CategoryDone:
		return b.Done
	default:
		return b.Todo
	}
}

func (b *Board) Set(category constants.TaskCategory, tasks []Task) {
	switch category {
	case constants.CategoryInProgress:
		b.InProgress = tasks
	case constants.CategoryDone:
		b.Done = tasks
	default:
		b.Todo = tasks
	}
}

// Find returns the category and index of the task with the given id.
func (b *Board) Find(id string) (constants.TaskCategory, int, bool) {
	for _, category := range constants.Categories {
		for i, task := range b.List(category) {
			if task.ID == id {
				return category, i, true
			}
		}
	}
	return "", -1, false
}

// Clone copies the category slices so the result can be mutated
// without touching b.
func (b Board) Clone() Board {
	return Board{
		Todo:       append([]Task(nil), b.Todo...),
		InProgress: append([]Task(nil), b.InProgress...),
		Done:       append([]Task(nil), b.Done...),
	}
}

func (b Board) Len() int {
	return len(b.Todo) + len(b.InProgress) + len(b.Done)
}
