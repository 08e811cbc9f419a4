package constants

type TaskCategory string

const (
	CategoryTodo       TaskCategory = "todo"
	CategoryInProgress TaskCategory = "inProgress"
	CategoryDone       TaskCategory = "done"
)

// Categories is the board column order.
var Categories = []TaskCategory{CategoryTodo, CategoryInProgress, CategoryDone}

func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryTodo, CategoryInProgress, CategoryDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
