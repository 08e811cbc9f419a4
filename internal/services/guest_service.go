package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"workbase.com/workbase/internal/constants"
	dto "workbase.com/workbase/internal/data_models"
	apperrors "workbase.com/workbase/internal/errors"
	model "workbase.com/workbase/internal/models"
	repository "workbase.com/workbase/internal/repositories"
)

// GuestService moves the records a guest kept in browser storage into an
// account. The import is all or nothing.
type GuestService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{db: db, now: utcNow}
}

func (s *GuestService) Import(ctx context.Context, ownerID string, snapshot dto.GuestSnapshot) (*dto.GuestImportResult, error) {
	result := &dto.GuestImportResult{}
	now := s.now()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tasks := repository.NewTaskRepository(tx)
		notes := repository.NewNoteRepository(tx)
		stickies := repository.NewStickyNoteRepository(tx)

		next := make(map[constants.TaskCategory]int, len(constants.Categories))
		for _, category := range constants.Categories {
			count, err := tasks.CountCategory(ctx, ownerID, category)
			if err != nil {
				return err
			}
			next[category] = count
		}

		for _, g := range snapshot.Tasks {
			title, err := requireText(g.Title, "task title")
			if err != nil {
				return err
			}
			category := g.Category
			if category == "" {
				category = constants.CategoryTodo
			}
			if !category.Valid() {
				return apperrors.ErrInvalidCategory
			}
			priority := g.Priority
			if priority == "" {
				priority = constants.PriorityMedium
			}
			if !priority.Valid() {
				return apperrors.ErrInvalidPriority
			}

			task := &model.Task{
				ID:          uuid.NewString(),
				OwnerID:     ownerID,
				Title:       title,
				Description: g.Description,
				Category:    category,
				Position:    next[category],
				Priority:    priority,
				Version:     1,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := tasks.Create(ctx, task); err != nil {
				return err
			}
			next[category]++
			result.Tasks++
		}

		for _, g := range snapshot.Notes {
			title, err := requireText(g.Title, "note title")
			if err != nil {
				return err
			}
			note := &model.Note{
				ID:        uuid.NewString(),
				OwnerID:   ownerID,
				Title:     title,
				Body:      g.Body,
				Pinned:    g.Pinned,
				Version:   1,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := notes.Create(ctx, note); err != nil {
				return err
			}
			result.Notes++
		}

		z, err := stickies.MaxZ(ctx, ownerID)
		if err != nil {
			return err
		}
		for _, g := range snapshot.StickyNotes {
			var expiresAt *time.Time
			if g.ExpiresAt != nil {
				if !g.ExpiresAt.After(now) {
					result.Expired++
					continue
				}
				at := g.ExpiresAt.UTC()
				expiresAt = &at
			}

			z++
			note := &model.StickyNote{
				ID:        uuid.NewString(),
				OwnerID:   ownerID,
				Content:   g.Content,
				Color:     g.Color,
				X:         g.X,
				Y:         g.Y,
				Width:     g.Width,
				Height:    g.Height,
				Z:         z,
				ExpiresAt: expiresAt,
				Version:   1,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if note.Color == "" {
				note.Color = defaultStickyColor
			}
			if note.Width == 0 {
				note.Width = defaultStickyWidth
			}
			if note.Height == 0 {
				note.Height = defaultStickyHeight
			}
			if err := stickies.Create(ctx, note); err != nil {
				return err
			}
			result.StickyNotes++
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to import guest data: %w", err)
	}

	return result, nil
}
