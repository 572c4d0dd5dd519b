package stack

import (
	"errors"
	"github.com/hneemann/collection"
	"github.com/hneemann/iterator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestPushPop(t *testing.T) {
	for _, n := range []int{1, 6, 7, 50} {
		s := New[int]()
		for i := 1; i <= n; i++ {
			assert.NoError(t, s.Push(i))
		}
		assert.Equal(t, n, s.Size())
		for i := n; i >= 1; i-- {
			v, err := s.Pop()
			assert.NoError(t, err)
			assert.Equal(t, i, v)
		}
		assert.True(t, s.IsEmpty())
	}
}

func TestUnderflow(t *testing.T) {
	s := New[int]()
	_, err := s.Pop()
	assert.True(t, errors.Is(err, collection.ErrStackUnderflow))
	_, err = s.Peek()
	assert.True(t, errors.Is(err, collection.ErrStackUnderflow))

	assert.NoError(t, s.Push(1))
	_, err = s.Pop()
	assert.NoError(t, err)
	_, err = s.Pop()
	assert.True(t, errors.Is(err, collection.ErrStackUnderflow))
}

func TestPeek(t *testing.T) {
	s := New[string]()
	assert.NoError(t, s.Push("a"))
	assert.NoError(t, s.Push("b"))
	v, err := s.Peek()
	assert.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, 2, s.Size())
}

func TestCapacity(t *testing.T) {
	s, err := NewCap[int](0)
	require.NoError(t, err)
	assert.NoError(t, s.Push(1))
	assert.NoError(t, s.Push(2))
	v, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, 2, v)

	s, err = NewCap[int](-1)
	assert.Nil(t, s)
	assert.True(t, errors.Is(err, collection.ErrInvalidArgument))
}

func TestNil(t *testing.T) {
	s := New[*int]()
	assert.True(t, errors.Is(s.Push(nil), collection.ErrNullValue))
	_, err := s.Add(nil)
	assert.True(t, errors.Is(err, collection.ErrNullValue))
	_, err = s.Contains(nil)
	assert.True(t, errors.Is(err, collection.ErrNullValue))
	_, err = s.Remove(nil)
	assert.True(t, errors.Is(err, collection.ErrNullValue))
	assert.True(t, s.IsEmpty())
}

func TestBounded(t *testing.T) {
	s, err := NewBounded[int](2)
	require.NoError(t, err)
	assert.NoError(t, s.Push(1))
	assert.NoError(t, s.Push(2))
	assert.True(t, errors.Is(s.Push(3), collection.ErrStackOverflow))
	assert.Equal(t, 2, s.Size())

	_, err = s.AddAll(iterator.Slice([]int{4}))
	assert.True(t, errors.Is(err, collection.ErrStackOverflow))

	_, err = s.Pop()
	assert.NoError(t, err)
	_, err = s.AddAll(iterator.Slice([]int{4, 5}))
	assert.True(t, errors.Is(err, collection.ErrStackOverflow))
	assert.Equal(t, 1, s.Size())

	_, err = NewBounded[int](0)
	assert.True(t, errors.Is(err, collection.ErrInvalidArgument))
}

func TestAddAll(t *testing.T) {
	s := New[int]()
	ok, err := s.AddAll(iterator.Slice([]int{1, 2, 3}))
	assert.NoError(t, err)
	assert.True(t, ok)
	v, err := s.Peek()
	assert.NoError(t, err)
	assert.Equal(t, 3, v)

	a := 1
	p := New[*int]()
	_, err = p.AddAll(iterator.Slice([]*int{&a, nil}))
	assert.True(t, errors.Is(err, collection.ErrNullValue))
	assert.Equal(t, 0, p.Size())
}

func TestRemoveFromMiddle(t *testing.T) {
	s := New[string]()
	_, err := s.AddAll(iterator.Slice([]string{"a", "b", "c", "b"}))
	require.NoError(t, err)

	ok, err := s.Remove("b")
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.Remove("x")
	assert.NoError(t, err)
	assert.False(t, ok)

	items, err := iterator.ToSlice(s.Iter())
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, items)

	c, err := s.Contains("c")
	assert.NoError(t, err)
	assert.True(t, c)
}

func TestIterator(t *testing.T) {
	s := New[int]()
	for i := 0; i < 3; i++ {
		assert.NoError(t, s.Push(i))
	}
	for n := 0; n < 2; n++ {
		it := s.Iterator()
		var got []int
		for it.HasNext() {
			v, err := it.Next()
			assert.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, []int{0, 1, 2}, got)
		_, err := it.Next()
		assert.True(t, errors.Is(err, collection.ErrEndOfSequence))
	}
}

func TestClear(t *testing.T) {
	s := New[int]()
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.NoError(t, s.Push(1))
	s.Clear()
	assert.True(t, s.IsEmpty())
	_, err := s.Peek()
	assert.True(t, errors.Is(err, collection.ErrStackUnderflow))
}

func TestString(t *testing.T) {
	s := New[int]()
	assert.Equal(t, "[]", s.String())
	assert.NoError(t, s.Push(1))
	assert.NoError(t, s.Push(2))
	assert.Equal(t, "[1, 2]", s.String())
}

func TestUncomparable(t *testing.T) {
	s := New[any]()
	assert.True(t, errors.Is(s.Push([]int{1}), collection.ErrInvalidArgument))
	assert.NoError(t, s.Push(1))
	c, err := s.Contains([]int{1})
	assert.NoError(t, err)
	assert.False(t, c)
	assert.Equal(t, 1, s.Size())
}

func TestStackContract(t *testing.T) {
	var s collection.Stack[string] = New[string]()
	assert.NoError(t, s.Push("a"))
	v, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, "a", v)
}
