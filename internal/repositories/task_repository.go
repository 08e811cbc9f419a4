package repository

import (
	"context"

	"gorm.io/gorm"

	"workbase.com/workbase/internal/constants"
	apperrors "workbase.com/workbase/internal/errors"
	model "workbase.com/workbase/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Transaction runs fn against a repository bound to a single transaction.
func (r *TaskRepository) Transaction(ctx context.Context, fn func(tx *TaskRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewTaskRepository(tx))
	})
}

// Sessions returns a session repository sharing this repository's
// connection, so it joins any transaction the task repository is bound to.
func (r *TaskRepository) Sessions() *SessionRepository {
	return NewSessionRepository(r.db)
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Omit("Subtasks").Create(task).Error
}

func orderedSubtasks(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}

func (r *TaskRepository) FindByID(ctx context.Context, ownerID, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Subtasks", orderedSubtasks).
		First(&task, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrTaskNotFound)
	}
	return &task, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Subtasks", orderedSubtasks).
		Where("owner_id = ?", ownerID).
		Order("position asc").Order("created_at asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListCategory(ctx context.Context, ownerID string, category constants.TaskCategory) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND category = ?", ownerID, category).
		Order("position asc").Order("created_at asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) CountCategory(ctx context.Context, ownerID string, category constants.TaskCategory) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("owner_id = ? AND category = ?", ownerID, category).
		Count(&count).Error
	return int(count), err
}

// Update writes the editable fields of task, guarded by task.Version.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	err := versionedUpdate(ctx, r.db, &model.Task{}, task.ID, task.OwnerID, task.Version, map[string]interface{}{
		"title":       task.Title,
		"description": task.Description,
		"priority":    task.Priority,
		"due_at":      task.DueAt,
	}, apperrors.ErrTaskNotFound)
	if err != nil {
		return err
	}

	task.Version++
	return nil
}

// SetPlacement stores a task's category and position. bump also increments
// the version; renumbered siblings keep theirs.
func (r *TaskRepository) SetPlacement(ctx context.Context, id string, category constants.TaskCategory, position int, bump bool) error {
	fields := map[string]interface{}{
		"category": category,
		"position": position,
	}
	if bump {
		fields["version"] = gorm.Expr("version + 1")
	}
	return r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Updates(fields).Error
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, id string) error {
	if err := r.db.WithContext(ctx).Where("task_id = ?", id).Delete(&model.Subtask{}).Error; err != nil {
		return err
	}
	return deleteOwned(ctx, r.db, &model.Task{}, id, ownerID, apperrors.ErrTaskNotFound)
}

// CloseGap shifts every task after the vacated position up by one.
func (r *TaskRepository) CloseGap(ctx context.Context, ownerID string, category constants.TaskCategory, vacated int) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("owner_id = ? AND category = ? AND position > ?", ownerID, category, vacated).
		UpdateColumn("position", gorm.Expr("position - 1")).Error
}

func (r *TaskRepository) CreateSubtask(ctx context.Context, subtask *model.Subtask) error {
	return r.db.WithContext(ctx).Create(subtask).Error
}

func (r *TaskRepository) CountSubtasks(ctx context.Context, taskID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subtask{}).Where("task_id = ?", taskID).Count(&count).Error
	return int(count), err
}

func (r *TaskRepository) FindSubtask(ctx context.Context, taskID, id string) (*model.Subtask, error) {
	var subtask model.Subtask
	err := r.db.WithContext(ctx).First(&subtask, "id = ? AND task_id = ?", id, taskID).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrSubtaskNotFound)
	}
	return &subtask, nil
}

func (r *TaskRepository) SetSubtaskDone(ctx context.Context, id string, done bool) error {
	return r.db.WithContext(ctx).Model(&model.Subtask{}).Where("id = ?", id).Update("done", done).Error
}

func (r *TaskRepository) DeleteSubtask(ctx context.Context, taskID, id string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND task_id = ?", id, taskID).Delete(&model.Subtask{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrSubtaskNotFound
	}
	return nil
}
