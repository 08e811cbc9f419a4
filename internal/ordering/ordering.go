// Package ordering holds the list operations behind drag-and-drop reordering.
// Every function returns a new slice and leaves its input untouched, so
// callers can keep the original as a rollback snapshot.
package ordering

// Clamp bounds an insertion index to [0, length].
func Clamp(index, length int) int {
	if index < 0 {
		return 0
	}
	if index > length {
		return length
	}
	return index
}

func Insert[T any](items []T, index int, item T) []T {
	index = Clamp(index, len(items))
	out := make([]T, 0, len(items)+1)
	out = append(out, items[:index]...)
	out = append(out, item)
	return append(out, items[index:]...)
}

// Remove drops the element at index. An out-of-range index returns a copy
// of items and the zero value.
func Remove[T any](items []T, index int) ([]T, T) {
	var removed T
	if index < 0 || index >= len(items) {
		return append([]T(nil), items...), removed
	}
	removed = items[index]
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), removed
}

// Move relocates the element at from so that it ends up at index to in the
// resulting slice.
func Move[T any](items []T, from, to int) []T {
	if from < 0 || from >= len(items) {
		return append([]T(nil), items...)
	}
	rest, item := Remove(items, from)
	return Insert(rest, to, item)
}

func IndexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}
