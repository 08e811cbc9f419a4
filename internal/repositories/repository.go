package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "workbase.com/workbase/internal/errors"
)

func translate(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

// versionedUpdate applies fields to the owner's row only when its version
// still matches, and bumps the version. A miss is reported as notFound when
// the row is gone and ErrOptimisticLock when it was changed underneath us.
func versionedUpdate(
	ctx context.Context,
	db *gorm.DB,
	m any,
	id, ownerID string,
	version uint,
	fields map[string]interface{},
	notFound error,
) error {
	fields["version"] = gorm.Expr("version + 1")
	fields["updated_at"] = time.Now().UTC()

	res := db.WithContext(ctx).Model(m).
		Where("id = ? AND owner_id = ? AND version = ?", id, ownerID, version).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(m).Where("id = ? AND owner_id = ?", id, ownerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return notFound
	}
	return apperrors.ErrOptimisticLock
}

func deleteOwned(ctx context.Context, db *gorm.DB, m any, id, ownerID string, notFound error) error {
	res := db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound
	}
	return nil
}
