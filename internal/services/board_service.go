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
	"workbase.com/workbase/internal/ordering"
	repository "workbase.com/workbase/internal/repositories"
)

// BoardService owns the to-do board: task CRUD, subtasks and the
// drag-and-drop ordering of tasks within and across categories.
type BoardService struct {
	repo *repository.TaskRepository
	now  func() time.Time
}

func NewBoardService(repo *repository.TaskRepository) *BoardService {
	return &BoardService{
		repo: repo,
		now:  utcNow,
	}
}

// CreateTask appends a new task to the end of the owner's todo list.
func (s *BoardService) CreateTask(ctx context.Context, ownerID string, req dto.CreateTaskRequest) (*model.Task, error) {
	title, err := requireText(req.Title, "title")
	if err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = constants.PriorityMedium
	}
	if !priority.Valid() {
		return nil, apperrors.ErrInvalidPriority
	}

	now := s.now()
	task := &model.Task{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: req.Description,
		Category:    constants.CategoryTodo,
		Priority:    priority,
		DueAt:       req.DueAt,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
		Subtasks:    []model.Subtask{},
	}

	err = s.repo.Transaction(ctx, func(tx *repository.TaskRepository) error {
		count, err := tx.CountCategory(ctx, ownerID, constants.CategoryTodo)
		if err != nil {
			return err
		}
		task.Position = count
		return tx.Create(ctx, task)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

func (s *BoardService) GetTask(ctx context.Context, ownerID, id string) (*model.Task, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

func (s *BoardService) ListBoard(ctx context.Context, ownerID string) (model.Board, error) {
	tasks, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return model.Board{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	board := model.Board{
		Todo:       []model.Task{},
		InProgress: []model.Task{},
		Done:       []model.Task{},
	}
	for _, task := range tasks {
		board.Set(task.Category, append(board.List(task.Category), task))
	}
	return board, nil
}

func (s *BoardService) UpdateTask(ctx context.Context, ownerID, id string, req dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if task.Title, err = requireText(*req.Title, "title"); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return nil, apperrors.ErrInvalidPriority
		}
		task.Priority = *req.Priority
	}
	if req.ClearDue {
		task.DueAt = nil
	} else if req.DueAt != nil {
		task.DueAt = req.DueAt
	}

	task.Version = req.Version
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	task.UpdatedAt = s.now()

	return task, nil
}

// DeleteTask removes the task and its subtasks, detaches the sessions that
// tracked it and closes the gap it left in its category, all or nothing.
func (s *BoardService) DeleteTask(ctx context.Context, ownerID, id string) error {
	err := s.repo.Transaction(ctx, func(tx *repository.TaskRepository) error {
		task, err := tx.FindByID(ctx, ownerID, id)
		if err != nil {
			return err
		}
		if err := tx.Sessions().DetachTask(ctx, id); err != nil {
			return err
		}
		if err := tx.Delete(ctx, ownerID, id); err != nil {
			return err
		}
		return tx.CloseGap(ctx, ownerID, task.Category, task.Position)
	})
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// MoveTask is the drop half of drag-and-drop: the task leaves its current
// list and lands at index in the target category. index is clamped to the
// target list, and both lists are renumbered from zero.
func (s *BoardService) MoveTask(ctx context.Context, ownerID, id string, req dto.MoveTaskRequest) (model.Board, error) {
	if !req.Category.Valid() {
		return model.Board{}, apperrors.ErrInvalidCategory
	}

	err := s.repo.Transaction(ctx, func(tx *repository.TaskRepository) error {
		task, err := tx.FindByID(ctx, ownerID, id)
		if err != nil {
			return err
		}

		source, err := tx.ListCategory(ctx, ownerID, task.Category)
		if err != nil {
			return err
		}
		from := ordering.IndexOf(source, func(t model.Task) bool { return t.ID == id })

		if task.Category == req.Category {
			return renumber(ctx, tx, ordering.Move(source, from, req.Index), req.Category, id)
		}

		rest, _ := ordering.Remove(source, from)
		target, err := tx.ListCategory(ctx, ownerID, req.Category)
		if err != nil {
			return err
		}
		target = ordering.Insert(target, req.Index, *task)

		if err := renumber(ctx, tx, rest, task.Category, id); err != nil {
			return err
		}
		return renumber(ctx, tx, target, req.Category, id)
	})
	if err != nil {
		return model.Board{}, fmt.Errorf("failed to move task: %w", err)
	}

	return s.ListBoard(ctx, ownerID)
}

func renumber(ctx context.Context, tx *repository.TaskRepository, tasks []model.Task, category constants.TaskCategory, movedID string) error {
	for i, task := range tasks {
		moved := task.ID == movedID
		if !moved && task.Position == i && task.Category == category {
			continue
		}
		if err := tx.SetPlacement(ctx, task.ID, category, i, moved); err != nil {
			return err
		}
	}
	return nil
}

func (s *BoardService) AddSubtask(ctx context.Context, ownerID, taskID string, req dto.CreateSubtaskRequest) (*model.Subtask, error) {
	title, err := requireText(req.Title, "title")
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, ownerID, taskID); err != nil {
		return nil, err
	}

	count, err := s.repo.CountSubtasks(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to count subtasks: %w", err)
	}

	subtask := &model.Subtask{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		Title:     title,
		Position:  count,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateSubtask(ctx, subtask); err != nil {
		return nil, fmt.Errorf("failed to create subtask: %w", err)
	}
	return subtask, nil
}

func (s *BoardService) ToggleSubtask(ctx context.Context, ownerID, taskID, id string, done bool) (*model.Subtask, error) {
	if _, err := s.repo.FindByID(ctx, ownerID, taskID); err != nil {
		return nil, err
	}

	subtask, err := s.repo.FindSubtask(ctx, taskID, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetSubtaskDone(ctx, id, done); err != nil {
		return nil, fmt.Errorf("failed to update subtask: %w", err)
	}

	subtask.Done = done
	return subtask, nil
}

func (s *BoardService) DeleteSubtask(ctx context.Context, ownerID, taskID, id string) error {
	if _, err := s.repo.FindByID(ctx, ownerID, taskID); err != nil {
		return err
	}
	return s.repo.DeleteSubtask(ctx, taskID, id)
}
