package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackNew(t *testing.T) {
	capacity := uint(10)

	stack := New[string](capacity)

	assert.Equal(t, capacity, uint(cap(stack.underlying)))
	assert.Len(t, stack.underlying, 0)
}

func TestStackPushPop(t *testing.T) {
	stack := New[string](0)

	stack.Push("a")
	stack.Push("b")
	assert.Equal(t, uint(2), stack.Len())

	got, err := stack.Pop()
	assert.NoError(t, err)
	assert.Equal(t, "b", got)
	assert.Equal(t, uint(1), stack.Len())
}

func TestStackPopEmpty(t *testing.T) {
	stack := New[string](0)

	got, err := stack.Pop()
	assert.ErrorIs(t, err, ErrStackEmpty)
	assert.Zero(t, got)
}

func TestStackPeek(t *testing.T) {
	stack := New[int](0)
	stack.Push(1)

	got, err := stack.Peek()
	assert.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Equal(t, uint(1), stack.Len())

	empty := New[int](0)
	_, err = empty.Peek()
	assert.ErrorIs(t, err, ErrStackEmpty)
}

func TestStackData(t *testing.T) {
	stack := New[int](0)
	stack.Push(1)
	stack.Push(2)

	data := stack.Data()
	assert.Equal(t, []int{1, 2}, data)

	// Data is a copy; mutating it leaves the stack alone.
	data[0] = 99
	top, err := stack.Pop()
	assert.NoError(t, err)
	assert.Equal(t, 2, top)
	bottom, err := stack.Pop()
	assert.NoError(t, err)
	assert.Equal(t, 1, bottom)
}
