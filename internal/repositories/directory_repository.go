package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "workbase.com/workbase/internal/errors"
	model "workbase.com/workbase/internal/models"
)

type DirectoryRepository struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

func (r *DirectoryRepository) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	err := r.db.WithContext(ctx).Create(employee).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrDuplicateEmail
	}
	return err
}

func (r *DirectoryRepository) FindEmployee(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrEmployeeNotFound)
	}
	return &employee, nil
}

// ListEmployees filters by department and a free-text query over name,
// email and title.
func (r *DirectoryRepository) ListEmployees(ctx context.Context, department, query string) ([]model.Employee, error) {
	q := r.db.WithContext(ctx)
	if department != "" {
		q = q.Where("department = ?", department)
	}
	if query = strings.TrimSpace(query); query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(title) LIKE ?", like, like, like)
	}

	var employees []model.Employee
	err := q.Order("name asc").Find(&employees).Error
	return employees, err
}

func (r *DirectoryRepository) UpdateEmployee(ctx context.Context, employee *model.Employee) error {
	res := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ? AND version = ?", employee.ID, employee.Version).
		Updates(map[string]interface{}{
			"name":       employee.Name,
			"email":      employee.Email,
			"title":      employee.Title,
			"department": employee.Department,
			"avatar_url": employee.AvatarURL,
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now().UTC(),
		})
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return apperrors.ErrDuplicateEmail
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindEmployee(ctx, employee.ID); err != nil {
			return err
		}
		return apperrors.ErrOptimisticLock
	}

	employee.Version++
	return nil
}

func (r *DirectoryRepository) DeleteEmployee(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("to_employee_id = ?", id).Delete(&model.Kudos{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Employee{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrEmployeeNotFound
		}
		return nil
	})
}

func (r *DirectoryRepository) CreateKudos(ctx context.Context, kudos *model.Kudos) error {
	return r.db.WithContext(ctx).Create(kudos).Error
}

func (r *DirectoryRepository) ListKudos(ctx context.Context, employeeID string) ([]model.Kudos, error) {
	var kudos []model.Kudos
	err := r.db.WithContext(ctx).
		Where("to_employee_id = ?", employeeID).
		Order("created_at desc").
		Find(&kudos).Error
	return kudos, err
}

func (r *DirectoryRepository) CreateAnnouncement(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *DirectoryRepository) ListAnnouncements(ctx context.Context, limit int) ([]model.Announcement, error) {
	var announcements []model.Announcement
	err := r.db.WithContext(ctx).
		Order("pinned desc").Order("created_at desc").
		Limit(limit).
		Find(&announcements).Error
	return announcements, err
}

func (r *DirectoryRepository) DeleteAnnouncement(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Announcement{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}
