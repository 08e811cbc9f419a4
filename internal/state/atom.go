// Package state is the client-side cache: observable cells holding what the
// UI renders, and optimistic mutation on top of them.
package state

import "sync"

// Atom is an observable value. Subscribers run synchronously after every
// change, outside the atom's lock, in no particular order.
type Atom[T any] struct {
	mu    sync.RWMutex
	value T
	subs  map[int]func(T)
	next  int
}

func NewAtom[T any](initial T) *Atom[T] {
	return &Atom[T]{value: initial, subs: make(map[int]func(T))}
}

func (a *Atom[T]) Get() T {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.value
}

func (a *Atom[T]) Set(value T) {
	a.mu.Lock()
	a.value = value
	subs := a.subscribers()
	a.mu.Unlock()

	notify(subs, value)
}

// Update replaces the value with fn(current) atomically and returns the
// new value.
func (a *Atom[T]) Update(fn func(T) T) T {
	a.mu.Lock()
	a.value = fn(a.value)
	value := a.value
	subs := a.subscribers()
	a.mu.Unlock()

	notify(subs, value)
	return value
}

// Subscribe registers fn for future changes. The returned func removes it.
func (a *Atom[T]) Subscribe(fn func(T)) func() {
	a.mu.Lock()
	id := a.next
	a.next++
	a.subs[id] = fn
	a.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.subs, id)
			a.mu.Unlock()
		})
	}
}

func (a *Atom[T]) subscribers() []func(T) {
	subs := make([]func(T), 0, len(a.subs))
	for _, fn := range a.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify[T any](subs []func(T), value T) {
	for _, fn := range subs {
		fn(value)
	}
}
