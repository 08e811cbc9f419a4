package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"workbase.com/workbase/internal/constants"
	model "workbase.com/workbase/internal/models"
)

func ids(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func sampleBoard() model.Board {
	b := model.Board{}
	for _, id := range []string{"a", "b", "c"} {
		b = AddTask(b, model.Task{ID: id})
	}
	return AddTask(b, model.Task{ID: "d", Category: constants.CategoryDone})
}

func TestAddTask(t *testing.T) {
	b := sampleBoard()

	assert.Equal(t, []string{"a", "b", "c"}, ids(b.Todo))
	assert.Equal(t, 2, b.Todo[2].Position)
	assert.Equal(t, constants.CategoryTodo, b.Todo[0].Category)
	assert.Equal(t, []string{"d"}, ids(b.Done))
}

func TestRemoveTask(t *testing.T) {
	b := sampleBoard()

	out := RemoveTask(b, "a")
	assert.Equal(t, []string{"b", "c"}, ids(out.Todo))
	assert.Equal(t, 0, out.Todo[0].Position)
	assert.Equal(t, []string{"a", "b", "c"}, ids(b.Todo), "input is untouched")
	assert.Equal(t, 1, b.Todo[1].Position)

	assert.Equal(t, b, RemoveTask(b, "missing"))
}

func TestMoveTask(t *testing.T) {
	b := sampleBoard()

	within := MoveTask(b, "a", constants.CategoryTodo, 2)
	assert.Equal(t, []string{"b", "c", "a"}, ids(within.Todo))

	across := MoveTask(b, "b", constants.CategoryDone, 0)
	assert.Equal(t, []string{"a", "c"}, ids(across.Todo))
	assert.Equal(t, []string{"b", "d"}, ids(across.Done))
	assert.Equal(t, constants.CategoryDone, across.Done[0].Category)
	assert.Equal(t, 1, across.Done[1].Position)

	clamped := MoveTask(b, "c", constants.CategoryInProgress, 99)
	assert.Equal(t, []string{"c"}, ids(clamped.InProgress))
	assert.Equal(t, 0, clamped.InProgress[0].Position)

	assert.Equal(t, []string{"a", "b", "c"}, ids(b.Todo), "input is untouched")
	assert.Equal(t, b, MoveTask(b, "c", "someday", 0))
}

func TestReplaceTask(t *testing.T) {
	b := sampleBoard()

	out := ReplaceTask(b, "b", model.Task{ID: "server-b", Category: constants.CategoryTodo, Position: 1})
	assert.Equal(t, []string{"a", "server-b", "c"}, ids(out.Todo))
	assert.Equal(t, []string{"a", "b", "c"}, ids(b.Todo))
}
