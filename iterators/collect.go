package iterators

// Collect drains the iterator into a slice and closes it.
func Collect[T any](i Iterator[T]) (vs []T, err error) {
	defer func() {
		cErr := i.Close()
		if err == nil {
			err = cErr
		}
	}()
	vs = make([]T, 0)
	for i.Next() {
		vs = append(vs, i.Value())
	}
	return vs, i.Err()
}

// Break can be returned from a ForEach block to stop the iteration early
// without reporting an error to the ForEach caller.
const Break breakError = "iterators: break"

type breakError string

func (err breakError) Error() string { return string(err) }

// ForEach calls the block with every value of the iterator, then closes it.
// A Break returned from the block stops the iteration without error.
func ForEach[T any](i Iterator[T], blk func(T) error) (rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	for i.Next() {
		if err := blk(i.Value()); err != nil {
			if err == Break {
				break
			}
			return err
		}
	}
	return i.Err()
}

// First returns the first value of the iterator and closes it.
// The found boolean reports whether the iterator had a value at all.
func First[T any](i Iterator[T]) (value T, found bool, err error) {
	defer func() {
		cErr := i.Close()
		if err == nil {
			err = cErr
		}
	}()
	if !i.Next() {
		return value, false, i.Err()
	}
	return i.Value(), true, i.Err()
}

// Last drains the iterator and returns its final value.
// The found boolean reports whether the iterator had a value at all.
func Last[T any](i Iterator[T]) (value T, found bool, err error) {
	defer func() {
		cErr := i.Close()
		if err == nil {
			err = cErr
		}
	}()
	for i.Next() {
		value = i.Value()
		found = true
	}
	if err := i.Err(); err != nil {
		return value, false, err
	}
	return value, found, nil
}

// Count drains the iterator and returns the total number of iterations.
func Count[T any](i Iterator[T]) (total int, err error) {
	defer func() {
		cErr := i.Close()
		if err == nil {
			err = cErr
		}
	}()
	for i.Next() {
		total++
	}
	return total, i.Err()
}

// Reduce folds the iterator's values into a single result,
// starting from the initial value.
func Reduce[R, T any](i Iterator[T], initial R, blk func(R, T) R) (result R, rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	result = initial
	for i.Next() {
		result = blk(result, i.Value())
	}
	return result, i.Err()
}
