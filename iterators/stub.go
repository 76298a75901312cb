package iterators

// Stub wraps an iterator so tests can override individual behaviors.
func Stub[T any](i Iterator[T]) *StubIter[T] {
	return &StubIter[T]{
		Iterator:  i,
		StubClose: i.Close,
		StubErr:   i.Err,
		StubNext:  i.Next,
		StubValue: i.Value,
	}
}

type StubIter[T any] struct {
	Iterator  Iterator[T]
	StubClose func() error
	StubErr   func() error
	StubNext  func() bool
	StubValue func() T
}

func (m *StubIter[T]) Close() error { return m.StubClose() }
func (m *StubIter[T]) Err() error   { return m.StubErr() }
func (m *StubIter[T]) Next() bool   { return m.StubNext() }
func (m *StubIter[T]) Value() T     { return m.StubValue() }
