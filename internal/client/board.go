package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"workbase.com/workbase/internal/constants"
	dto "workbase.com/workbase/internal/data_models"
	model "workbase.com/workbase/internal/models"
	"workbase.com/workbase/internal/state"
)

const pendingPrefix = "pending-"

// Board mirrors the signed-in owner's board. Mutations show up in State
// immediately and are undone if the server rejects them.
type Board struct {
	api   *Client
	state *state.Atom[model.Board]
}

func NewBoard(api *Client) *Board {
	return &Board{
		api: api,
		state: state.NewAtom(model.Board{
			Todo:       []model.Task{},
			InProgress: []model.Task{},
			Done:       []model.Task{},
		}),
	}
}

func (b *Board) State() *state.Atom[model.Board] {
	return b.state
}

// Load replaces the local board with the server's.
func (b *Board) Load(ctx context.Context) error {
	var board model.Board
	if err := b.api.do(ctx, http.MethodGet, "/tasks", nil, &board); err != nil {
		return err
	}
	b.state.Set(board)
	return nil
}

// Create shows a placeholder at the end of todo right away and swaps in the
// server's task once it is stored.
func (b *Board) Create(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error) {
	placeholder := model.Task{
		ID:          pendingPrefix + uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Category:    constants.CategoryTodo,
		Priority:    req.Priority,
		DueAt:       req.DueAt,
	}

	var created model.Task
	err := state.Optimistic(ctx, b.state,
		func(board model.Board) model.Board { return state.AddTask(board, placeholder) },
		func(ctx context.Context) (func(model.Board) model.Board, error) {
			if err := b.api.do(ctx, http.MethodPost, "/tasks", req, &created); err != nil {
				return nil, err
			}
			return func(board model.Board) model.Board {
				return state.ReplaceTask(board, placeholder.ID, created)
			}, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (b *Board) Delete(ctx context.Context, id string) error {
	return state.Optimistic(ctx, b.state,
		func(board model.Board) model.Board { return state.RemoveTask(board, id) },
		func(ctx context.Context) (func(model.Board) model.Board, error) {
			return nil, b.api.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil)
		},
	)
}

// Move is the drop of a drag. The server answers with the renumbered board,
// which replaces the local one.
func (b *Board) Move(ctx context.Context, id string, category constants.TaskCategory, index int) error {
	return state.Optimistic(ctx, b.state,
		func(board model.Board) model.Board { return state.MoveTask(board, id, category, index) },
		func(ctx context.Context) (func(model.Board) model.Board, error) {
			var board model.Board
			req := dto.MoveTaskRequest{Category: category, Index: index}
			if err := b.api.do(ctx, http.MethodPost, "/tasks/"+id+"/move", req, &board); err != nil {
				return nil, err
			}
			return func(model.Board) model.Board { return board }, nil
		},
	)
}
