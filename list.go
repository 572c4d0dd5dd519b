package collection

import (
	"bytes"
	"fmt"
	"github.com/hneemann/collection/buffer"
	"github.com/hneemann/iterator"
)

// List is an index addressable list backed by a growable array.
// The elements are kept in insertion order.
type List[T comparable] struct {
	items *buffer.Buffer[T]
}

var _ Sequence[int] = (*List[int])(nil)

// NewList creates an empty list with the default capacity
func NewList[T comparable]() *List[T] {
	return &List[T]{items: buffer.New[T](DefaultCapacity)}
}

// NewListCap creates an empty list with the given initial capacity.
// A negative capacity is an error.
func NewListCap[T comparable](capacity int) (*List[T], error) {
	if err := CheckCapacity(capacity); err != nil {
		return nil, err
	}
	return &List[T]{items: buffer.New[T](capacity)}, nil
}

// NewListOf creates a list containing the given items
func NewListOf[T comparable](items ...T) (*List[T], error) {
	l, err := NewListCap[T](max(len(items), DefaultCapacity))
	if err != nil {
		return nil, err
	}
	if _, err := l.AddAll(iterator.Slice(items)); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *List[T]) Size() int {
	return l.items.Size()
}

func (l *List[T]) IsEmpty() bool {
	return l.items.Size() == 0
}

// Add appends the item at the end of the list
func (l *List[T]) Add(item T) (bool, error) {
	if IsNull(item) {
		return false, fmt.Errorf("%w: cannot add nil to list", ErrNullValue)
	}
	if err := CheckComparable(item); err != nil {
		return false, err
	}
	l.items.Append(item)
	return true, nil
}

// AddAll appends all items. The items are validated before
// the first one is added.
func (l *List[T]) AddAll(items iterator.Producer[T]) (bool, error) {
	staged, err := StageAll(items)
	if err != nil {
		return false, err
	}
	for _, item := range staged {
		l.items.Append(item)
	}
	return true, nil
}

// Get returns the item at the given index
func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.items.Get(index), nil
}

// RemoveAt removes the item at the given index and returns it.
// All following items are moved one index down.
func (l *List[T]) RemoveAt(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.items.RemoveAt(index), nil
}

// Remove removes the first occurrence of the given item.
// If the item is not found, false is returned.
func (l *List[T]) Remove(item T) (bool, error) {
	i, err := l.Index(item)
	if err != nil {
		return false, err
	}
	if i < 0 {
		return false, nil
	}
	l.items.RemoveAt(i)
	return true, nil
}

// Index returns the index of the first occurrence of the item or -1
// if the item is not found.
func (l *List[T]) Index(item T) (int, error) {
	if IsNull(item) {
		return -1, fmt.Errorf("%w: cannot search for nil", ErrNullValue)
	}
	return l.items.Index(func(t T) bool { return t == item }), nil
}

func (l *List[T]) Contains(item T) (bool, error) {
	i, err := l.Index(item)
	if err != nil {
		return false, err
	}
	return i >= 0, nil
}

// Clear removes all items. The capacity is not reduced.
func (l *List[T]) Clear() {
	l.items.Truncate()
}

func (l *List[T]) Iter() iterator.Producer[T] {
	return NewIndexProducer(l.items.Size, l.items.Get)
}

func (l *List[T]) Iterator() Iterator[T] {
	return NewIndexIterator(l.items.Size, l.items.Get)
}

// ToSlice returns a copy of the list items
func (l *List[T]) ToSlice() []T {
	return l.items.Items()
}

func (l *List[T]) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	for i := 0; i < l.items.Size(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprint(l.items.Get(i)))
	}
	b.WriteString("]")
	return b.String()
}

func (l *List[T]) checkIndex(index int) error {
	if index < 0 || index >= l.items.Size() {
		return fmt.Errorf("%w: index %d out of range for size %d", ErrIndexOutOfRange, index, l.items.Size())
	}
	return nil
}
