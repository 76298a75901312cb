package veclite

// Error is an error implementation that allows declaring
// the package's errors with the `const` keyword.
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }

// ErrOutOfBounds is returned when an index falls outside
// the valid position range of a List.
const ErrOutOfBounds Error = "veclite: index out of bounds"
