package iterators

// Map transforms the values of the source iterator with the given function.
// This is useful when the consumer expects a different value type,
// like rendering list elements into their textual form.
func Map[To, From any](src Iterator[From], transform func(From) (To, error)) Iterator[To] {
	return &mapIter[From, To]{src: src, transform: transform}
}

type mapIter[From, To any] struct {
	src       Iterator[From]
	transform func(From) (To, error)

	err   error
	value To
}

func (i *mapIter[From, To]) Close() error {
	return i.src.Close()
}

func (i *mapIter[From, To]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.src.Err()
}

func (i *mapIter[From, To]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.src.Next() {
		return false
	}
	v, err := i.transform(i.src.Value())
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *mapIter[From, To]) Value() To {
	return i.value
}
