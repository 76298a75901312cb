package iterators

// Empty returns an iterator without any value,
// used to represent a nil result with the Null Object pattern.
func Empty[T any]() Iterator[T] {
	return emptyIter[T]{}
}

type emptyIter[T any] struct{}

func (emptyIter[T]) Close() error { return nil }
func (emptyIter[T]) Err() error   { return nil }
func (emptyIter[T]) Next() bool   { return false }

func (emptyIter[T]) Value() T {
	var v T
	return v
}
