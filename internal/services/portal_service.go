package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"workbase.com/workbase/internal/constants"
	dto "workbase.com/workbase/internal/data_models"
	apperrors "workbase.com/workbase/internal/errors"
	model "workbase.com/workbase/internal/models"
	repository "workbase.com/workbase/internal/repositories"
)

// PortalService files and progresses HR and IT portal tickets.
type PortalService struct {
	repo *repository.TicketRepository
	now  func() time.Time
}

func NewPortalService(repo *repository.TicketRepository) *PortalService {
	return &PortalService{repo: repo, now: utcNow}
}

func (s *PortalService) CreateTicket(ctx context.Context, ownerID string, req dto.CreateTicketRequest) (*model.Ticket, error) {
	if !req.Portal.Valid() {
		return nil, apperrors.ErrInvalidPortal
	}
	subject, err := requireText(req.Subject, "subject")
	if err != nil {
		return nil, err
	}

	now := s.now()
	ticket := &model.Ticket{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Portal:    req.Portal,
		Subject:   subject,
		Body:      req.Body,
		Status:    constants.TicketOpen,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return ticket, nil
}

func (s *PortalService) GetTicket(ctx context.Context, ownerID, id string) (*model.Ticket, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

func (s *PortalService) ListTickets(ctx context.Context, ownerID string, portal constants.Portal, status constants.TicketStatus) ([]model.Ticket, error) {
	if portal != "" && !portal.Valid() {
		return nil, apperrors.ErrInvalidPortal
	}
	if status != "" && !status.Valid() {
		return nil, apperrors.ErrInvalidTicketStatus
	}
	return s.repo.List(ctx, ownerID, portal, status)
}

func (s *PortalService) Transition(ctx context.Context, ownerID, id string, req dto.TransitionTicketRequest) (*model.Ticket, error) {
	if !req.Status.Valid() {
		return nil, apperrors.ErrInvalidTicketStatus
	}

	ticket, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if !ticket.Status.CanTransition(req.Status) {
		return nil, apperrors.ErrInvalidTransition
	}

	ticket.Status = req.Status
	ticket.Version = req.Version
	if err := s.repo.UpdateStatus(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}
	ticket.UpdatedAt = s.now()
	return ticket, nil
}

func (s *PortalService) DeleteTicket(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}
