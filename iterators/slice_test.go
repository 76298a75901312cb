package iterators_test

import (
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/veclite/iterators"
)

var _ iterators.Iterator[string] = iterators.Slice([]string{"A", "B", "C"})

func TestSlice_valuesReturnedInOrder(t *testing.T) {
	t.Parallel()

	i := iterators.Slice([]int{42, 4, 2})

	assert.Must(t).True(i.Next())
	assert.Must(t).Equal(42, i.Value())

	assert.Must(t).True(i.Next())
	assert.Must(t).Equal(4, i.Value())

	assert.Must(t).True(i.Next())
	assert.Must(t).Equal(2, i.Value())

	assert.Must(t).False(i.Next())
	assert.Must(t).Nil(i.Err())
}

func TestSlice_closed_iterationStops(t *testing.T) {
	t.Parallel()

	i := iterators.Slice([]int{42, 4, 2})

	assert.Must(t).True(i.Next())
	assert.Must(t).Nil(i.Close())
	assert.Must(t).False(i.Next())
}

func TestSlice_closeCalledMultipleTimes_noErrorReturned(t *testing.T) {
	t.Parallel()

	i := iterators.Slice([]int{42})

	for n := 0; n < 42; n++ {
		assert.Must(t).Nil(i.Close())
	}
}

func TestSlice_valueRepeatable(t *testing.T) {
	t.Parallel()

	i := iterators.Slice([]string{"foo"})

	assert.Must(t).True(i.Next())
	assert.Must(t).Equal("foo", i.Value())
	assert.Must(t).Equal("foo", i.Value())
}
