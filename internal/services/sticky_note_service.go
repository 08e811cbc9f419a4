package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	dto "workbase.com/workbase/internal/data_models"
	model "workbase.com/workbase/internal/models"
	repository "workbase.com/workbase/internal/repositories"
)

const (
	defaultStickyColor  = "#fde68a"
	defaultStickyWidth  = 200
	defaultStickyHeight = 200
)

// StickyNoteService manages the free-form sticky notes canvas. New and
// raised notes go on top of the owner's stack.
type StickyNoteService struct {
	repo *repository.StickyNoteRepository
	now  func() time.Time
}

func NewStickyNoteService(repo *repository.StickyNoteRepository) *StickyNoteService {
	return &StickyNoteService{repo: repo, now: utcNow}
}

func (s *StickyNoteService) CreateStickyNote(ctx context.Context, ownerID string, req dto.CreateStickyNoteRequest) (*model.StickyNote, error) {
	z, err := s.repo.MaxZ(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to read stack order: %w", err)
	}

	now := s.now()
	note := &model.StickyNote{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Content:   req.Content,
		Color:     req.Color,
		X:         req.X,
		Y:         req.Y,
		Width:     req.Width,
		Height:    req.Height,
		Z:         z + 1,
		ExpiresAt: expiry(now, req.TTLSeconds),
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

	if err := s.repo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create sticky note: %w", err)
	}
	return note, nil
}

func expiry(now time.Time, ttlSeconds int64) *time.Time {
	if ttlSeconds <= 0 {
		return nil
	}
	at := now.Add(time.Duration(ttlSeconds) * time.Second)
	return &at
}

// ListStickyNotes hides notes that expired but have not been swept yet.
func (s *StickyNoteService) ListStickyNotes(ctx context.Context, ownerID string) ([]model.StickyNote, error) {
	return s.repo.ListLive(ctx, ownerID, s.now())
}

func (s *StickyNoteService) UpdateStickyNote(ctx context.Context, ownerID, id string, req dto.UpdateStickyNoteRequest) (*model.StickyNote, error) {
	note, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Color != nil {
		note.Color = *req.Color
	}
	if req.X != nil {
		note.X = *req.X
	}
	if req.Y != nil {
		note.Y = *req.Y
	}
	if req.Width != nil {
		note.Width = *req.Width
	}
	if req.Height != nil {
		note.Height = *req.Height
	}
	if req.TTLSeconds != nil {
		note.ExpiresAt = expiry(s.now(), *req.TTLSeconds)
	}

	note.Version = req.Version
	if err := s.repo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update sticky note: %w", err)
	}
	note.UpdatedAt = s.now()
	return note, nil
}

func (s *StickyNoteService) BringToFront(ctx context.Context, ownerID, id string) (*model.StickyNote, error) {
	note, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	z, err := s.repo.MaxZ(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to read stack order: %w", err)
	}
	if note.Z == z {
		return note, nil
	}

	if err := s.repo.SetZ(ctx, id, z+1); err != nil {
		return nil, fmt.Errorf("failed to raise sticky note: %w", err)
	}
	note.Z = z + 1
	return note, nil
}

func (s *StickyNoteService) DeleteStickyNote(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}

// Sweep deletes every sticky note whose expiry is at or before now.
func (s *StickyNoteService) Sweep(ctx context.Context, now time.Time) (int64, error) {
	return s.repo.DeleteExpired(ctx, now)
}
