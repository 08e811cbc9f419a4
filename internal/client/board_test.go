package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbase.com/workbase/internal/constants"
	dto "workbase.com/workbase/internal/data_models"
	model "workbase.com/workbase/internal/models"
	"workbase.com/workbase/internal/state"
)

// fakeAPI serves a tiny board. failing makes every mutation answer 500.
type fakeAPI struct {
	mu      sync.Mutex
	board   model.Board
	nextID  int
	failing bool
	seen    []string
}

func (f *fakeAPI) setFailing(failing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing = failing
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	fail := func(w http.ResponseWriter) bool {
		if f.failing {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
			return true
		}
		return false
	}

	mux.HandleFunc("GET /api/v1/tasks", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.board)
	})
	mux.HandleFunc("POST /api/v1/tasks", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if fail(w) {
			return
		}
		var req dto.CreateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.nextID++
		task := model.Task{ID: "task-" + strings.Repeat("x", f.nextID), Title: req.Title, Version: 1}
		f.board = state.AddTask(f.board, task)
		writeJSON(w, http.StatusCreated, f.board.Todo[len(f.board.Todo)-1])
	})
	mux.HandleFunc("DELETE /api/v1/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.seen = append(f.seen, r.Header.Get("Authorization"))
		if fail(w) {
			return
		}
		f.board = state.RemoveTask(f.board, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /api/v1/tasks/{id}/move", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if fail(w) {
			return
		}
		var req dto.MoveTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.board = state.MoveTask(f.board, r.PathValue("id"), req.Category, req.Index)
		writeJSON(w, http.StatusOK, f.board)
	})
	return mux
}

func newBoardFixture(t *testing.T) (*Board, *fakeAPI) {
	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return NewBoard(New(srv.URL, "secret-token", srv.Client())), api
}

func titles(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestBoard_CreateAddsToTodo(t *testing.T) {
	b, _ := newBoardFixture(t)
	ctx := context.Background()

	var pending []string
	unsubscribe := b.State().Subscribe(func(board model.Board) {
		if len(board.Todo) > 0 {
			pending = append(pending, board.Todo[len(board.Todo)-1].ID)
		}
	})
	defer unsubscribe()

	task, err := b.Create(ctx, dto.CreateTaskRequest{Title: "write tests"})
	require.NoError(t, err)

	board := b.State().Get()
	require.Len(t, board.Todo, 1)
	assert.Equal(t, task.ID, board.Todo[0].ID)
	require.Len(t, pending, 2)
	assert.True(t, strings.HasPrefix(pending[0], pendingPrefix), "placeholder shown before the server answers")
	assert.Equal(t, task.ID, pending[1])
}

func TestBoard_FailedCreateRemovesPlaceholder(t *testing.T) {
	b, api := newBoardFixture(t)
	api.setFailing(true)

	_, err := b.Create(context.Background(), dto.CreateTaskRequest{Title: "doomed"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Empty(t, b.State().Get().Todo)
}

func TestBoard_FailedDeleteRestoresTask(t *testing.T) {
	b, api := newBoardFixture(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b"} {
		_, err := b.Create(ctx, dto.CreateTaskRequest{Title: title})
		require.NoError(t, err)
	}
	before := b.State().Get()

	api.setFailing(true)
	err := b.Delete(ctx, before.Todo[0].ID)
	require.Error(t, err)
	assert.Equal(t, before, b.State().Get())
	api.mu.Lock()
	assert.Equal(t, []string{"Bearer secret-token"}, api.seen)
	api.mu.Unlock()

	api.setFailing(false)
	require.NoError(t, b.Delete(ctx, before.Todo[0].ID))
	assert.Equal(t, []string{"b"}, titles(b.State().Get().Todo))
}

func TestBoard_MoveAcrossCategories(t *testing.T) {
	b, api := newBoardFixture(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		_, err := b.Create(ctx, dto.CreateTaskRequest{Title: title})
		require.NoError(t, err)
	}
	id := b.State().Get().Todo[1].ID

	require.NoError(t, b.Move(ctx, id, constants.CategoryDone, 0))
	board := b.State().Get()
	assert.Equal(t, []string{"a", "c"}, titles(board.Todo))
	assert.Equal(t, []string{"b"}, titles(board.Done))
	assert.Equal(t, constants.CategoryDone, board.Done[0].Category)

	api.setFailing(true)
	require.Error(t, b.Move(ctx, board.Todo[0].ID, constants.CategoryInProgress, 0))
	assert.Equal(t, board, b.State().Get())
}

func TestBoard_Load(t *testing.T) {
	b, api := newBoardFixture(t)
	api.mu.Lock()
	api.board = state.AddTask(model.Board{}, model.Task{ID: "seed", Title: "from server"})
	api.mu.Unlock()

	require.NoError(t, b.Load(context.Background()))
	assert.Equal(t, []string{"from server"}, titles(b.State().Get().Todo))
}
