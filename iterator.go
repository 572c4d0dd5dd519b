package collection

import (
	"fmt"
	"github.com/hneemann/iterator"
)

type indexIterator[T any] struct {
	size  func() int
	get   func(int) T
	index int
}

// NewIndexIterator creates an iterator which visits the indices 0..size()-1.
// The size is queried on every step.
func NewIndexIterator[T any](size func() int, get func(int) T) Iterator[T] {
	return &indexIterator[T]{size: size, get: get}
}

func (it *indexIterator[T]) HasNext() bool {
	return it.index < it.size()
}

func (it *indexIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, fmt.Errorf("%w: end of sequence after %d elements", ErrEndOfSequence, it.index)
	}
	v := it.get(it.index)
	it.index++
	return v, nil
}

// NewIndexProducer creates a producer which yields the elements at the
// indices 0..size()-1.
func NewIndexProducer[T any](size func() int, get func(int) T) iterator.Producer[T] {
	return func(yield iterator.Consumer[T]) {
		for i := 0; i < size(); i++ {
			if !yield(get(i), nil) {
				return
			}
		}
	}
}

// FromIterator creates a producer that drains the iterators created by
// the given factory. Every run of the producer uses a new iterator.
func FromIterator[T any](create func() Iterator[T]) iterator.Producer[T] {
	return func(yield iterator.Consumer[T]) {
		it := create()
		for it.HasNext() {
			v, err := it.Next()
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}
