/*
Package iterators provides lazy iteration over veclite lists.

An Iterator decouples the traversal of a sequence from its representation.
The consumer ranges over the values with Next/Value without knowing whether
they come from a List, a plain slice, or a combinator such as Filter or Map.

https://en.wikipedia.org/wiki/Iterator_pattern
*/
package iterators

import "io"

// Iterator encapsulates accessing and traversing an ordered sequence of V values.
// Interface design inspired by https://golang.org/pkg/encoding/json/#Decoder
type Iterator[V any] interface {
	// Closer releases any resource used behind the scenes.
	// For in-memory iterators it simply returns nil.
	io.Closer
	// Err returns the error cause of a stopped iteration.
	Err() error
	// Next ensures that Value returns the next item when executed.
	// If the next value is not retrievable, Next returns false
	// and Err reports the cause, if any.
	Next() bool
	// Value returns the current value in the iterator.
	// The call is repeatable without side effects.
	Value() V
}
