package iterators

// Slice returns an iterator over the given slice's elements, front to back.
func Slice[T any](vs []T) Iterator[T] {
	return &sliceIter[T]{vs: vs}
}

type sliceIter[T any] struct {
	vs []T

	closed bool
	index  int
	value  T
}

func (i *sliceIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *sliceIter[T]) Err() error {
	return nil
}

func (i *sliceIter[T]) Next() bool {
	if i.closed {
		return false
	}
	if len(i.vs) <= i.index {
		return false
	}
	i.value = i.vs[i.index]
	i.index++
	return true
}

func (i *sliceIter[T]) Value() T {
	return i.value
}
