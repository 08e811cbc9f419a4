package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	dto "workbase.com/workbase/internal/data_models"
	apperrors "workbase.com/workbase/internal/errors"
	model "workbase.com/workbase/internal/models"
	repository "workbase.com/workbase/internal/repositories"
)

const sessionListLimit = 100

// SessionService tracks focus sessions. An owner has at most one running
// session at a time.
type SessionService struct {
	repo  *repository.SessionRepository
	tasks *repository.TaskRepository
	now   func() time.Time
}

func NewSessionService(repo *repository.SessionRepository, tasks *repository.TaskRepository) *SessionService {
	return &SessionService{repo: repo, tasks: tasks, now: utcNow}
}

// Start opens a session. The open-session check and the insert share one
// transaction, and the partial unique index on open sessions rejects any
// insert that still races past the check.
func (s *SessionService) Start(ctx context.Context, ownerID string, req dto.StartSessionRequest) (*model.Session, error) {
	if req.TaskID != nil {
		if _, err := s.tasks.FindByID(ctx, ownerID, *req.TaskID); err != nil {
			return nil, err
		}
	}

	now := s.now()
	session := &model.Session{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		TaskID:    req.TaskID,
		StartedAt: now,
		CreatedAt: now,
	}

	err := s.repo.Transaction(ctx, func(tx *repository.SessionRepository) error {
		if _, err := tx.FindOpen(ctx, ownerID); err == nil {
			return apperrors.ErrSessionRunning
		} else if !errors.Is(err, apperrors.ErrSessionNotFound) {
			return err
		}
		return tx.Create(ctx, session)
	})
	if errors.Is(err, apperrors.ErrSessionRunning) {
		return nil, apperrors.ErrSessionRunning
	}
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return session, nil
}

func (s *SessionService) Current(ctx context.Context, ownerID string) (*model.Session, error) {
	return s.repo.FindOpen(ctx, ownerID)
}

func (s *SessionService) Stop(ctx context.Context, ownerID string) (*model.Session, error) {
	session, err := s.repo.FindOpen(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	ended := s.now()
	if ended.Before(session.StartedAt) {
		ended = session.StartedAt
	}
	session.EndedAt = &ended
	session.DurationSec = int64(ended.Sub(session.StartedAt) / time.Second)

	if err := s.repo.Close(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to stop session: %w", err)
	}
	return session, nil
}

func (s *SessionService) List(ctx context.Context, ownerID string) ([]model.Session, error) {
	return s.repo.List(ctx, ownerID, sessionListLimit)
}

func (s *SessionService) Stats(ctx context.Context, ownerID string) ([]model.SessionStat, error) {
	return s.repo.Stats(ctx, ownerID)
}
