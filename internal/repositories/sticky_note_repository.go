package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "workbase.com/workbase/internal/errors"
	model "workbase.com/workbase/internal/models"
)

type StickyNoteRepository struct {
	db *gorm.DB
}

func NewStickyNoteRepository(db *gorm.DB) *StickyNoteRepository {
	return &StickyNoteRepository{db: db}
}

func (r *StickyNoteRepository) Create(ctx context.Context, note *model.StickyNote) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *StickyNoteRepository) FindByID(ctx context.Context, ownerID, id string) (*model.StickyNote, error) {
	var note model.StickyNote
	if err := r.db.WithContext(ctx).First(&note, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		return nil, translate(err, apperrors.ErrStickyNoteNotFound)
	}
	return &note, nil
}

// ListLive returns the owner's notes that have not expired at now, bottom of
// the stack first.
func (r *StickyNoteRepository) ListLive(ctx context.Context, ownerID string, now time.Time) ([]model.StickyNote, error) {
	var notes []model.StickyNote
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND (expires_at IS NULL OR expires_at > ?)", ownerID, now).
		Order("z asc").
		Find(&notes).Error
	return notes, err
}

func (r *StickyNoteRepository) MaxZ(ctx context.Context, ownerID string) (int, error) {
	var z int
	err := r.db.WithContext(ctx).Model(&model.StickyNote{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(MAX(z), 0)").
		Scan(&z).Error
	return z, err
}

func (r *StickyNoteRepository) Update(ctx context.Context, note *model.StickyNote) error {
	err := versionedUpdate(ctx, r.db, &model.StickyNote{}, note.ID, note.OwnerID, note.Version, map[string]interface{}{
		"content":    note.Content,
		"color":      note.Color,
		"x":          note.X,
		"y":          note.Y,
		"width":      note.Width,
		"height":     note.Height,
		"expires_at": note.ExpiresAt,
	}, apperrors.ErrStickyNoteNotFound)
	if err != nil {
		return err
	}

	note.Version++
	return nil
}

func (r *StickyNoteRepository) SetZ(ctx context.Context, id string, z int) error {
	return r.db.WithContext(ctx).Model(&model.StickyNote{}).Where("id = ?", id).Update("z", z).Error
}

func (r *StickyNoteRepository) Delete(ctx context.Context, ownerID, id string) error {
	return deleteOwned(ctx, r.db, &model.StickyNote{}, id, ownerID, apperrors.ErrStickyNoteNotFound)
}

// DeleteExpired removes every note, across owners, whose expiry is at or
// before now.
func (r *StickyNoteRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", now).
		Delete(&model.StickyNote{})
	return res.RowsAffected, res.Error
}
