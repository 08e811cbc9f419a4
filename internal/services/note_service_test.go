package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "workbase.com/workbase/internal/data_models"
	apperrors "workbase.com/workbase/internal/errors"
	repository "workbase.com/workbase/internal/repositories"
)

func TestNoteService_CRUD(t *testing.T) {
	clock := newFixedClock()
	s := NewNoteService(repository.NewNoteRepository(setupTestDB(t)))
	s.now = clock.now
	ctx := context.Background()
	owner := newOwner()

	note, err := s.CreateNote(ctx, owner, dto.CreateNoteRequest{Title: "Standup", Body: "yesterday / today"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), note.Version)

	body := "blocked on review"
	updated, err := s.UpdateNote(ctx, owner, note.ID, dto.UpdateNoteRequest{Version: 1, Body: &body})
	require.NoError(t, err)
	assert.Equal(t, "blocked on review", updated.Body)
	assert.Equal(t, "Standup", updated.Title)

	_, err = s.UpdateNote(ctx, owner, note.ID, dto.UpdateNoteRequest{Version: 1, Body: &body})
	assert.ErrorIs(t, err, apperrors.ErrOptimisticLock)

	require.NoError(t, s.DeleteNote(ctx, owner, note.ID))
	_, err = s.GetNote(ctx, owner, note.ID)
	assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
	assert.ErrorIs(t, s.DeleteNote(ctx, owner, note.ID), apperrors.ErrNoteNotFound)
}

func TestNoteService_ListPinnedFirstAndSearch(t *testing.T) {
	clock := newFixedClock()
	s := NewNoteService(repository.NewNoteRepository(setupTestDB(t)))
	s.now = clock.now
	ctx := context.Background()
	owner := newOwner()

	for _, req := range []dto.CreateNoteRequest{
		{Title: "Groceries", Body: "milk"},
		{Title: "Roadmap", Body: "Q3 planning", Pinned: true},
		{Title: "Ideas", Body: "offsite planning"},
	} {
		_, err := s.CreateNote(ctx, owner, req)
		require.NoError(t, err)
		clock.advance(time.Minute)
	}

	notes, err := s.ListNotes(ctx, owner, "")
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "Roadmap", notes[0].Title)
	assert.Equal(t, "Ideas", notes[1].Title)

	found, err := s.ListNotes(ctx, owner, "PLANNING")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	other, err := s.ListNotes(ctx, newOwner(), "")
	require.NoError(t, err)
	assert.Empty(t, other)
}
