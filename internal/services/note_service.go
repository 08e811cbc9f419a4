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

type NoteService struct {
	repo *repository.NoteRepository
	now  func() time.Time
}

func NewNoteService(repo *repository.NoteRepository) *NoteService {
	return &NoteService{repo: repo, now: utcNow}
}

func (s *NoteService) CreateNote(ctx context.Context, ownerID string, req dto.CreateNoteRequest) (*model.Note, error) {
	title, err := requireText(req.Title, "title")
	if err != nil {
		return nil, err
	}

	now := s.now()
	note := &model.Note{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     title,
		Body:      req.Body,
		Pinned:    req.Pinned,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

func (s *NoteService) GetNote(ctx context.Context, ownerID, id string) (*model.Note, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

func (s *NoteService) ListNotes(ctx context.Context, ownerID, query string) ([]model.Note, error) {
	return s.repo.List(ctx, ownerID, query)
}

func (s *NoteService) UpdateNote(ctx context.Context, ownerID, id string, req dto.UpdateNoteRequest) (*model.Note, error) {
	note, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if note.Title, err = requireText(*req.Title, "title"); err != nil {
			return nil, err
		}
	}
	if req.Body != nil {
		note.Body = *req.Body
	}
	if req.Pinned != nil {
		note.Pinned = *req.Pinned
	}

	note.Version = req.Version
	if err := s.repo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	note.UpdatedAt = s.now()
	return note, nil
}

func (s *NoteService) DeleteNote(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}
