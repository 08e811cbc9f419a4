package state

import "context"

// Remote performs the server side of a mutation. On success it may return a
// reconcile func that folds the server's answer into the local value.
type Remote[T any] func(ctx context.Context) (reconcile func(T) T, err error)

// Optimistic applies a change locally before the server confirms it. When
// remote fails the atom is restored to the value it held before apply and
// the error is returned.
func Optimistic[T any](ctx context.Context, atom *Atom[T], apply func(T) T, remote Remote[T]) error {
	snapshot := atom.Get()
	atom.Update(apply)

	reconcile, err := remote(ctx)
	if err != nil {
		atom.Set(snapshot)
		return err
	}

	if reconcile != nil {
		atom.Update(reconcile)
	}
	return nil
}
