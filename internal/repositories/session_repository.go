package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "workbase.com/workbase/internal/errors"
	model "workbase.com/workbase/internal/models"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Transaction runs fn against a repository bound to a single transaction.
func (r *SessionRepository) Transaction(ctx context.Context, fn func(tx *SessionRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewSessionRepository(tx))
	})
}

// Create inserts the session. A second open session for the same owner hits
// idx_sessions_open_owner and is reported as ErrSessionRunning.
func (r *SessionRepository) Create(ctx context.Context, session *model.Session) error {
	err := r.db.WithContext(ctx).Create(session).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrSessionRunning
	}
	return err
}

func (r *SessionRepository) FindOpen(ctx context.Context, ownerID string) (*model.Session, error) {
	var session model.Session
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND ended_at IS NULL", ownerID).
		Order("started_at desc").
		First(&session).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrSessionNotFound)
	}
	return &session, nil
}

// Close stores the end time and duration, only if the session is still open.
func (r *SessionRepository) Close(ctx context.Context, session *model.Session) error {
	res := r.db.WithContext(ctx).Model(&model.Session{}).
		Where("id = ? AND ended_at IS NULL", session.ID).
		Updates(map[string]interface{}{
			"ended_at":     session.EndedAt,
			"duration_sec": session.DurationSec,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) List(ctx context.Context, ownerID string, limit int) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("started_at desc").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

// Stats totals the finished sessions of an owner per task. Sessions without a
// task are grouped under a nil TaskID.
func (r *SessionRepository) Stats(ctx context.Context, ownerID string) ([]model.SessionStat, error) {
	var stats []model.SessionStat
	err := r.db.WithContext(ctx).Model(&model.Session{}).
		Select("task_id, SUM(duration_sec) AS total_sec, COUNT(*) AS sessions").
		Where("owner_id = ? AND ended_at IS NOT NULL", ownerID).
		Group("task_id").
		Order("total_sec desc").
		Scan(&stats).Error
	return stats, err
}

// DetachTask clears the task reference of sessions that pointed at a deleted task.
func (r *SessionRepository) DetachTask(ctx context.Context, taskID string) error {
	return r.db.WithContext(ctx).Model(&model.Session{}).
		Where("task_id = ?", taskID).
		Update("task_id", nil).Error
}
