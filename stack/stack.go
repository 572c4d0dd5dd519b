// Package stack implements a LIFO stack backed by a growable array.
package stack

import (
	"bytes"
	"fmt"
	"github.com/hneemann/collection"
	"github.com/hneemann/collection/buffer"
	"github.com/hneemann/iterator"
)

// Stack is a LIFO container. The top of the stack is the last element
// of the underlying array. A stack created by NewBounded holds at most
// limit elements, all other stacks grow without limit.
type Stack[T comparable] struct {
	items *buffer.Buffer[T]
	limit int
}

var _ collection.Stack[int] = (*Stack[int])(nil)

// New creates an empty stack with the default capacity
func New[T comparable]() *Stack[T] {
	return &Stack[T]{items: buffer.New[T](collection.DefaultCapacity)}
}

// NewCap creates an empty stack with the given initial capacity
func NewCap[T comparable](capacity int) (*Stack[T], error) {
	if err := collection.CheckCapacity(capacity); err != nil {
		return nil, err
	}
	return &Stack[T]{items: buffer.New[T](capacity)}, nil
}

// NewBounded creates a stack which holds at most limit elements.
// Pushing onto a full stack returns ErrStackOverflow.
func NewBounded[T comparable](limit int) (*Stack[T], error) {
	if err := collection.CheckLimit(limit); err != nil {
		return nil, err
	}
	return &Stack[T]{items: buffer.New[T](min(limit, collection.DefaultCapacity)), limit: limit}, nil
}

func (s *Stack[T]) Size() int {
	return s.items.Size()
}

func (s *Stack[T]) IsEmpty() bool {
	return s.items.Size() == 0
}

// Push puts the item on top of the stack
func (s *Stack[T]) Push(item T) error {
	if collection.IsNull(item) {
		return fmt.Errorf("%w: cannot push nil", collection.ErrNullValue)
	}
	if err := collection.CheckComparable(item); err != nil {
		return err
	}
	if err := s.checkRoom(1); err != nil {
		return err
	}
	s.items.Append(item)
	return nil
}

// Pop removes the top item and returns it
func (s *Stack[T]) Pop() (T, error) {
	if s.items.Size() == 0 {
		var zero T
		return zero, fmt.Errorf("%w: cannot pop", collection.ErrStackUnderflow)
	}
	return s.items.RemoveLast(), nil
}

// Peek returns the top item without removing it
func (s *Stack[T]) Peek() (T, error) {
	if s.items.Size() == 0 {
		var zero T
		return zero, fmt.Errorf("%w: cannot peek", collection.ErrStackUnderflow)
	}
	return s.items.Get(s.items.Size() - 1), nil
}

// Add is the same as Push
func (s *Stack[T]) Add(item T) (bool, error) {
	if err := s.Push(item); err != nil {
		return false, err
	}
	return true, nil
}

// AddAll pushes all items in the order they are produced.
// If an item is nil or a bounded stack has not enough room
// for all the items, the stack is not modified.
func (s *Stack[T]) AddAll(items iterator.Producer[T]) (bool, error) {
	staged, err := collection.StageAll(items)
	if err != nil {
		return false, err
	}
	if err := s.checkRoom(len(staged)); err != nil {
		return false, err
	}
	for _, item := range staged {
		s.items.Append(item)
	}
	return true, nil
}

func (s *Stack[T]) Contains(item T) (bool, error) {
	i, err := s.index(item)
	if err != nil {
		return false, err
	}
	return i >= 0, nil
}

// Remove removes the first occurrence of the item counted from the
// bottom of the stack. The items above are moved down.
func (s *Stack[T]) Remove(item T) (bool, error) {
	i, err := s.index(item)
	if err != nil {
		return false, err
	}
	if i < 0 {
		return false, nil
	}
	s.items.RemoveAt(i)
	return true, nil
}

func (s *Stack[T]) Clear() {
	s.items.Truncate()
}

// Iter returns a producer of all items from the bottom to the top
func (s *Stack[T]) Iter() iterator.Producer[T] {
	return collection.NewIndexProducer(s.items.Size, s.items.Get)
}

// Iterator returns an iterator from the bottom to the top
func (s *Stack[T]) Iterator() collection.Iterator[T] {
	return collection.NewIndexIterator(s.items.Size, s.items.Get)
}

func (s *Stack[T]) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	for i := 0; i < s.items.Size(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprint(s.items.Get(i)))
	}
	b.WriteString("]")
	return b.String()
}

func (s *Stack[T]) index(item T) (int, error) {
	if collection.IsNull(item) {
		return -1, fmt.Errorf("%w: cannot search for nil", collection.ErrNullValue)
	}
	return s.items.Index(func(t T) bool { return t == item }), nil
}

func (s *Stack[T]) checkRoom(n int) error {
	if s.limit > 0 && s.items.Size()+n > s.limit {
		return fmt.Errorf("%w: limit of %d elements reached", collection.ErrStackOverflow, s.limit)
	}
	return nil
}
