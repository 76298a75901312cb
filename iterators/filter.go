package iterators

// Filter yields only the values of the source iterator for which keep returns true.
func Filter[T any](src Iterator[T], keep func(T) bool) Iterator[T] {
	return &filterIter[T]{src: src, keep: keep}
}

type filterIter[T any] struct {
	src  Iterator[T]
	keep func(T) bool

	value T
}

func (i *filterIter[T]) Close() error {
	return i.src.Close()
}

func (i *filterIter[T]) Err() error {
	return i.src.Err()
}

func (i *filterIter[T]) Next() bool {
	for i.src.Next() {
		v := i.src.Value()
		if i.keep(v) {
			i.value = v
			return true
		}
	}
	return false
}

func (i *filterIter[T]) Value() T {
	return i.value
}
