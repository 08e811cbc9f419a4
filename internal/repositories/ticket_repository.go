package repository

import (
	"context"

	"gorm.io/gorm"

	"workbase.com/workbase/internal/constants"
	apperrors "workbase.com/workbase/internal/errors"
	model "workbase.com/workbase/internal/models"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(ctx context.Context, ticket *model.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *TicketRepository) FindByID(ctx context.Context, ownerID, id string) (*model.Ticket, error) {
	var ticket model.Ticket
	if err := r.db.WithContext(ctx).First(&ticket, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		return nil, translate(err, apperrors.ErrTicketNotFound)
	}
	return &ticket, nil
}

func (r *TicketRepository) List(ctx context.Context, ownerID string, portal constants.Portal, status constants.TicketStatus) ([]model.Ticket, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if portal != "" {
		q = q.Where("portal = ?", portal)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var tickets []model.Ticket
	err := q.Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, ticket *model.Ticket) error {
	err := versionedUpdate(ctx, r.db, &model.Ticket{}, ticket.ID, ticket.OwnerID, ticket.Version, map[string]interface{}{
		"status": ticket.Status,
	}, apperrors.ErrTicketNotFound)
	if err != nil {
		return err
	}

	ticket.Version++
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ownerID, id string) error {
	return deleteOwned(ctx, r.db, &model.Ticket{}, id, ownerID, apperrors.ErrTicketNotFound)
}
