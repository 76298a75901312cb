package iterators

// Error returns an iterator that yields no value and reports the given error.
// It can be returned when a traversal cannot even begin.
func Error[T any](err error) Iterator[T] {
	return errorIter[T]{err: err}
}

type errorIter[T any] struct {
	err error
}

func (i errorIter[T]) Close() error { return nil }
func (i errorIter[T]) Err() error   { return i.err }
func (i errorIter[T]) Next() bool   { return false }

func (i errorIter[T]) Value() T {
	var v T
	return v
}
