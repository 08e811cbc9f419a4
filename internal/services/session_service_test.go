package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dto "workbase.com/workbase/internal/data_models"
	apperrors "workbase.com/workbase/internal/errors"
	model "workbase.com/workbase/internal/models"
	repository "workbase.com/workbase/internal/repositories"
)

func newSessionFixture(t *testing.T) (*SessionService, *BoardService, *fixedClock) {
	db := setupTestDB(t)
	clock := newFixedClock()
	tasks := repository.NewTaskRepository(db)
	sessions := repository.NewSessionRepository(db)

	s := NewSessionService(sessions, tasks)
	s.now = clock.now
	board := NewBoardService(tasks)
	board.now = clock.now
	return s, board, clock
}

func TestSessionService_OneRunningSession(t *testing.T) {
	s, _, clock := newSessionFixture(t)
	ctx := context.Background()
	owner := newOwner()

	_, err := s.Current(ctx, owner)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	started, err := s.Start(ctx, owner, dto.StartSessionRequest{})
	require.NoError(t, err)

	_, err = s.Start(ctx, owner, dto.StartSessionRequest{})
	assert.ErrorIs(t, err, apperrors.ErrSessionRunning)

	_, err = s.Start(ctx, newOwner(), dto.StartSessionRequest{})
	assert.NoError(t, err, "another owner may run their own session")

	clock.advance(25 * time.Minute)
	stopped, err := s.Stop(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, started.ID, stopped.ID)
	require.NotNil(t, stopped.EndedAt)
	assert.EqualValues(t, 25*60, stopped.DurationSec)

	_, err = s.Stop(ctx, owner)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	_, err = s.Start(ctx, owner, dto.StartSessionRequest{})
	assert.NoError(t, err)
}

func TestSessionService_ConcurrentStartsOpenOneSession(t *testing.T) {
	db := setupPooledTestDB(t, 8)
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("slow_create", func(*gorm.DB) {
		time.Sleep(5 * time.Millisecond)
	}))

	s := NewSessionService(repository.NewSessionRepository(db), repository.NewTaskRepository(db))
	ctx := context.Background()
	owner := newOwner()

	const callers = 20
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Start(ctx, owner, dto.StartSessionRequest{})
		}(i)
	}
	wg.Wait()

	started := 0
	for _, err := range errs {
		if err == nil {
			started++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrSessionRunning)
	}
	assert.Equal(t, 1, started)

	var open int64
	require.NoError(t, db.Model(&model.Session{}).Where("owner_id = ? AND ended_at IS NULL", owner).Count(&open).Error)
	assert.EqualValues(t, 1, open)
}

func TestSessionRepository_RejectsSecondOpenSession(t *testing.T) {
	repo := repository.NewSessionRepository(setupTestDB(t))
	ctx := context.Background()
	owner := newOwner()
	now := newFixedClock().now()

	open := func() *model.Session {
		return &model.Session{ID: uuid.NewString(), OwnerID: owner, StartedAt: now, CreatedAt: now}
	}

	first := open()
	require.NoError(t, repo.Create(ctx, first))
	assert.ErrorIs(t, repo.Create(ctx, open()), apperrors.ErrSessionRunning)

	ended := now.Add(time.Minute)
	first.EndedAt = &ended
	require.NoError(t, repo.Close(ctx, first))
	assert.NoError(t, repo.Create(ctx, open()), "closed sessions do not count")
}

func TestSessionService_UnknownTask(t *testing.T) {
	s, _, _ := newSessionFixture(t)
	missing := "00000000-0000-0000-0000-000000000000"

	_, err := s.Start(context.Background(), newOwner(), dto.StartSessionRequest{TaskID: &missing})
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestSessionService_StatsPerTask(t *testing.T) {
	s, board, clock := newSessionFixture(t)
	ctx := context.Background()
	owner := newOwner()

	task, err := board.CreateTask(ctx, owner, dto.CreateTaskRequest{Title: "write report"})
	require.NoError(t, err)

	run := func(taskID *string, d time.Duration) {
		t.Helper()
		_, err := s.Start(ctx, owner, dto.StartSessionRequest{TaskID: taskID})
		require.NoError(t, err)
		clock.advance(d)
		_, err = s.Stop(ctx, owner)
		require.NoError(t, err)
	}
	run(&task.ID, 10*time.Minute)
	run(&task.ID, 5*time.Minute)
	run(nil, time.Minute)

	_, err = s.Start(ctx, owner, dto.StartSessionRequest{TaskID: &task.ID})
	require.NoError(t, err)

	stats, err := s.Stats(ctx, owner)
	require.NoError(t, err)
	require.Len(t, stats, 2, "running sessions are not counted")

	assert.Equal(t, model.SessionStat{TaskID: &task.ID, TotalSec: 900, Sessions: 2}, stats[0])
	assert.Nil(t, stats[1].TaskID)
	assert.EqualValues(t, 60, stats[1].TotalSec)

	list, err := s.List(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 4)
	assert.Nil(t, list[0].EndedAt, "newest session first")
}

func TestSessionService_DeletingTaskDetachesSessions(t *testing.T) {
	s, board, clock := newSessionFixture(t)
	ctx := context.Background()
	owner := newOwner()

	task, err := board.CreateTask(ctx, owner, dto.CreateTaskRequest{Title: "refactor"})
	require.NoError(t, err)
	_, err = s.Start(ctx, owner, dto.StartSessionRequest{TaskID: &task.ID})
	require.NoError(t, err)
	clock.advance(time.Minute)
	_, err = s.Stop(ctx, owner)
	require.NoError(t, err)

	require.NoError(t, board.DeleteTask(ctx, owner, task.ID))

	list, err := s.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].TaskID)
}
