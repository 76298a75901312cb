/*
Package veclite provides a lightweight, ordered list built on top of a Go slice.

List keeps its elements in insertion order with contiguous zero based indexing,
and adds the convenience operations a bare slice lacks:
prepend, positional removal with an error on invalid index,
speculative lookup with the comma-ok idiom,
and a space separated textual rendering through fmt.Stringer.

	l := veclite.New[int]()
	l.Append(10)
	l.Append(20)
	l.Prepend(5)
	fmt.Println(l) // prints: 5 10 20

Traversal is done with the iterators subpackage:

	iter := l.Iter()
	defer iter.Close()
	for iter.Next() {
		_ = iter.Value()
	}

List has single-threaded semantics.
Concurrent mutation requires external synchronisation by the caller.
*/
package veclite

import (
	"fmt"
	"sort"
	"strings"

	"go.llib.dev/veclite/iterators"
)

// List is an ordered, indexable sequence of T values.
// The zero value is an empty list ready for use.
type List[T any] struct {
	values []T
}

// New returns an empty List.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a List populated with the given values, in argument order.
// It is the literal-construction convenience shape of FromSlice.
func Of[T any](vs ...T) *List[T] {
	return FromSlice(vs)
}

// FromSlice returns a List whose contents equal the given slice, in order.
// The slice is copied, the List exclusively owns its backing storage.
func FromSlice[T any](vs []T) *List[T] {
	values := make([]T, len(vs))
	copy(values, vs)
	return &List[T]{values: values}
}

// Append inserts the value at the end of the list.
func (l *List[T]) Append(v T) {
	l.values = append(l.values, v)
}

// Prepend inserts the value at position zero,
// shifting every existing element one position later.
// The shift makes Prepend linear in the current length.
func (l *List[T]) Prepend(v T) {
	var zero T
	l.values = append(l.values, zero)
	copy(l.values[1:], l.values)
	l.values[0] = v
}

// Insert places the value at the given position,
// shifting the elements from that position one later.
// Index may equal Len(), in which case Insert behaves as Append.
// An index outside [0, Len()] yields ErrOutOfBounds.
func (l *List[T]) Insert(index int, v T) error {
	if index < 0 || len(l.values) < index {
		return ErrOutOfBounds
	}
	var zero T
	l.values = append(l.values, zero)
	copy(l.values[index+1:], l.values[index:])
	l.values[index] = v
	return nil
}

// Remove removes and returns the element at the given position,
// shifting subsequent elements one position earlier.
// An index outside [0, Len()) yields ErrOutOfBounds and leaves the list unmodified.
func (l *List[T]) Remove(index int) (T, error) {
	if index < 0 || len(l.values) <= index {
		var zero T
		return zero, ErrOutOfBounds
	}
	v := l.values[index]
	copy(l.values[index:], l.values[index+1:])
	var zero T
	l.values[len(l.values)-1] = zero // release the reference held by the vacated slot
	l.values = l.values[:len(l.values)-1]
	return v, nil
}

// Lookup returns the element at the given position.
// The ok boolean reports whether the index was a valid position,
// invalid indexes report absence instead of an error,
// as lookups are expected to be probed speculatively.
func (l *List[T]) Lookup(index int) (T, bool) {
	if index < 0 || len(l.values) <= index {
		var zero T
		return zero, false
	}
	return l.values[index], true
}

// Len returns the current element count.
func (l *List[T]) Len() int {
	return len(l.values)
}

// IsEmpty reports whether the list has zero elements.
func (l *List[T]) IsEmpty() bool {
	return len(l.values) == 0
}

// Values returns a copy of the list's elements in order.
func (l *List[T]) Values() []T {
	vs := make([]T, len(l.values))
	copy(vs, l.values)
	return vs
}

// Clone returns a new List with the same contents.
func (l *List[T]) Clone() *List[T] {
	return FromSlice(l.values)
}

// Clear removes every element from the list.
func (l *List[T]) Clear() {
	l.values = nil
}

// Reverse reverses the element order in place.
func (l *List[T]) Reverse() {
	for i, j := 0, len(l.values)-1; i < j; i, j = i+1, j-1 {
		l.values[i], l.values[j] = l.values[j], l.values[i]
	}
}

// Sort sorts the elements in place using the given less function.
func (l *List[T]) Sort(less func(a, b T) bool) {
	sort.Slice(l.values, func(i, j int) bool {
		return less(l.values[i], l.values[j])
	})
}

// String renders the elements in order, separated by a single space,
// without surrounding brackets.
// An empty list renders as the empty string.
// Elements are formatted with the fmt "%v" verb,
// so a T implementing fmt.Stringer renders through its String method.
func (l *List[T]) String() string {
	var sb strings.Builder
	for i, v := range l.values {
		if 0 < i {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	return sb.String()
}

// Iter returns an iterator over the elements, front to back.
// Each call yields a fresh traversal from the start,
// and iterating does not consume or remove elements.
// Mutating the list during an ongoing traversal is not supported.
func (l *List[T]) Iter() iterators.Iterator[T] {
	return iterators.Slice(l.values)
}
