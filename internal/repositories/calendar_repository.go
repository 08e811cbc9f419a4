package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "workbase.com/workbase/internal/errors"
	model "workbase.com/workbase/internal/models"
)

type CalendarRepository struct {
	db *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

func (r *CalendarRepository) Create(ctx context.Context, event *model.CalendarEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *CalendarRepository) FindByID(ctx context.Context, ownerID, id string) (*model.CalendarEvent, error) {
	var event model.CalendarEvent
	if err := r.db.WithContext(ctx).First(&event, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		return nil, translate(err, apperrors.ErrEventNotFound)
	}
	return &event, nil
}

// ListRange returns events overlapping [from, to). Zero bounds are open.
func (r *CalendarRepository) ListRange(ctx context.Context, ownerID string, from, to time.Time) ([]model.CalendarEvent, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if !to.IsZero() {
		q = q.Where("starts_at < ?", to)
	}
	if !from.IsZero() {
		q = q.Where("ends_at >= ?", from)
	}

	var events []model.CalendarEvent
	err := q.Order("starts_at asc").Find(&events).Error
	return events, err
}

func (r *CalendarRepository) Update(ctx context.Context, event *model.CalendarEvent) error {
	err := versionedUpdate(ctx, r.db, &model.CalendarEvent{}, event.ID, event.OwnerID, event.Version, map[string]interface{}{
		"title":       event.Title,
		"description": event.Description,
		"starts_at":   event.StartsAt,
		"ends_at":     event.EndsAt,
		"all_day":     event.AllDay,
	}, apperrors.ErrEventNotFound)
	if err != nil {
		return err
	}

	event.Version++
	return nil
}

func (r *CalendarRepository) SetGoogleEventID(ctx context.Context, id, googleID string) error {
	return r.db.WithContext(ctx).Model(&model.CalendarEvent{}).Where("id = ?", id).Update("google_event_id", googleID).Error
}

func (r *CalendarRepository) Delete(ctx context.Context, ownerID, id string) error {
	return deleteOwned(ctx, r.db, &model.CalendarEvent{}, id, ownerID, apperrors.ErrEventNotFound)
}

func (r *CalendarRepository) SaveToken(ctx context.Context, token *model.GoogleToken) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		UpdateAll: true,
	}).Create(token).Error
}

func (r *CalendarRepository) FindToken(ctx context.Context, ownerID string) (*model.GoogleToken, error) {
	var token model.GoogleToken
	if err := r.db.WithContext(ctx).First(&token, "owner_id = ?", ownerID).Error; err != nil {
		return nil, translate(err, apperrors.ErrCalendarNotLinked)
	}
	return &token, nil
}
