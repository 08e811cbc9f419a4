package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	apperrors "workbase.com/workbase/internal/errors"
	model "workbase.com/workbase/internal/models"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *NoteRepository) FindByID(ctx context.Context, ownerID, id string) (*model.Note, error) {
	var note model.Note
	if err := r.db.WithContext(ctx).First(&note, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		return nil, translate(err, apperrors.ErrNoteNotFound)
	}
	return &note, nil
}

// List returns pinned notes first, then most recently edited. A non-empty
// query matches title or body case-insensitively.
func (r *NoteRepository) List(ctx context.Context, ownerID, query string) ([]model.Note, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if query = strings.TrimSpace(query); query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(body) LIKE ?", like, like)
	}

	var notes []model.Note
	err := q.Order("pinned desc").Order("updated_at desc").Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) Update(ctx context.Context, note *model.Note) error {
	err := versionedUpdate(ctx, r.db, &model.Note{}, note.ID, note.OwnerID, note.Version, map[string]interface{}{
		"title":  note.Title,
		"body":   note.Body,
		"pinned": note.Pinned,
	}, apperrors.ErrNoteNotFound)
	if err != nil {
		return err
	}

	note.Version++
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, ownerID, id string) error {
	return deleteOwned(ctx, r.db, &model.Note{}, id, ownerID, apperrors.ErrNoteNotFound)
}
