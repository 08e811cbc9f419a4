package state

import (
	"workbase.com/workbase/internal/constants"
	model "workbase.com/workbase/internal/models"
	"workbase.com/workbase/internal/ordering"
)

// The board reducers mirror the server's ordering rules so an optimistic
// board matches what the server answers. None of them modify their input.

// AddTask appends task to the end of its category, todo when unset.
func AddTask(b model.Board, task model.Task) model.Board {
	if task.Category == "" {
		task.Category = constants.CategoryTodo
	}
	out := b.Clone()
	out.Set(task.Category, renumber(append(out.List(task.Category), task), task.Category))
	return out
}

// RemoveTask drops the task and closes the gap it leaves. Unknown ids leave
// the board as it was.
func RemoveTask(b model.Board, id string) model.Board {
	category, index, ok := b.Find(id)
	if !ok {
		return b
	}
	out := b.Clone()
	rest, _ := ordering.Remove(out.List(category), index)
	out.Set(category, renumber(rest, category))
	return out
}

// MoveTask lands the task at index in category, clamping index to the
// target list.
func MoveTask(b model.Board, id string, category constants.TaskCategory, index int) model.Board {
	from, at, ok := b.Find(id)
	if !ok || !category.Valid() {
		return b
	}

	out := b.Clone()
	if from == category {
		out.Set(category, renumber(ordering.Move(out.List(category), at, index), category))
		return out
	}

	rest, task := ordering.Remove(out.List(from), at)
	out.Set(from, renumber(rest, from))
	out.Set(category, renumber(ordering.Insert(out.List(category), index, task), category))
	return out
}

// ReplaceTask swaps the task with id for task in place, for example a
// placeholder for the record the server created.
func ReplaceTask(b model.Board, id string, task model.Task) model.Board {
	category, index, ok := b.Find(id)
	if !ok {
		return b
	}
	out := b.Clone()
	list := out.List(category)
	list[index] = task
	out.Set(category, list)
	return out
}

func renumber(tasks []model.Task, category constants.TaskCategory) []model.Task {
	for i := range tasks {
		tasks[i].Position = i
		tasks[i].Category = category
	}
	return tasks
}
