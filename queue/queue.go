// Package queue implements a FIFO queue on a singly linked list.
package queue

import (
	"bytes"
	"fmt"
	"github.com/hneemann/collection"
	"github.com/hneemann/iterator"
)

// node is a cell of the list. Every node is referenced by its
// predecessor only, the tail pointer of the queue is the single
// additional reference.
type node[T any] struct {
	data T
	next *node[T]
}

// Queue is a FIFO container. Items are enqueued at the tail and
// dequeued at the head. An empty queue has head == tail == nil.
type Queue[T comparable] struct {
	head  *node[T]
	tail  *node[T]
	size  int
	limit int
}

var _ collection.Queue[int] = (*Queue[int])(nil)

// New creates an empty queue
func New[T comparable]() *Queue[T] {
	return &Queue[T]{}
}

// NewBounded creates a queue which holds at most limit items.
// Enqueueing into a full queue returns ErrQueueOverflow.
func NewBounded[T comparable](limit int) (*Queue[T], error) {
	if err := collection.CheckLimit(limit); err != nil {
		return nil, err
	}
	return &Queue[T]{limit: limit}, nil
}

func (q *Queue[T]) Size() int {
	return q.size
}

func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Enqueue adds the item at the end of the queue
func (q *Queue[T]) Enqueue(item T) error {
	if collection.IsNull(item) {
		return fmt.Errorf("%w: cannot enqueue nil", collection.ErrNullValue)
	}
	if err := collection.CheckComparable(item); err != nil {
		return err
	}
	if err := q.checkRoom(1); err != nil {
		return err
	}
	q.link(item)
	return nil
}

func (q *Queue[T]) link(item T) {
	n := &node[T]{data: item}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

// Dequeue removes the item at the head of the queue and returns it
func (q *Queue[T]) Dequeue() (T, error) {
	if q.head == nil {
		var zero T
		return zero, fmt.Errorf("%w: cannot dequeue", collection.ErrQueueUnderflow)
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	return n.data, nil
}

// Peek returns the item at the head of the queue without removing it
func (q *Queue[T]) Peek() (T, error) {
	if q.head == nil {
		var zero T
		return zero, fmt.Errorf("%w: cannot peek", collection.ErrQueueUnderflow)
	}
	return q.head.data, nil
}

// Add is the same as Enqueue
func (q *Queue[T]) Add(item T) (bool, error) {
	if err := q.Enqueue(item); err != nil {
		return false, err
	}
	return true, nil
}

// AddAll enqueues all items in the order they are produced.
// If an item is nil or a bounded queue has not enough room for
// all the items, the queue is not modified.
func (q *Queue[T]) AddAll(items iterator.Producer[T]) (bool, error) {
	staged, err := collection.StageAll(items)
	if err != nil {
		return false, err
	}
	if err := q.checkRoom(len(staged)); err != nil {
		return false, err
	}
	for _, item := range staged {
		q.link(item)
	}
	return true, nil
}

func (q *Queue[T]) Contains(item T) (bool, error) {
	if collection.IsNull(item) {
		return false, fmt.Errorf("%w: cannot search for nil", collection.ErrNullValue)
	}
	for n := q.head; n != nil; n = n.next {
		if n.data == item {
			return true, nil
		}
	}
	return false, nil
}

// Remove unlinks the first node holding the item.
// If the item is not found, false is returned.
func (q *Queue[T]) Remove(item T) (bool, error) {
	if collection.IsNull(item) {
		return false, fmt.Errorf("%w: cannot remove nil", collection.ErrNullValue)
	}
	var prev *node[T]
	for n := q.head; n != nil; prev, n = n, n.next {
		if n.data != item {
			continue
		}
		if prev == nil {
			q.head = n.next
		} else {
			prev.next = n.next
		}
		if n == q.tail {
			q.tail = prev
		}
		q.size--
		return true, nil
	}
	return false, nil
}

// Clear removes all items
func (q *Queue[T]) Clear() {
	q.head = nil
	q.tail = nil
	q.size = 0
}

// Iter returns a producer of all items from the head to the tail
func (q *Queue[T]) Iter() iterator.Producer[T] {
	return collection.FromIterator(q.Iterator)
}

// Iterator returns an iterator from the head to the tail
func (q *Queue[T]) Iterator() collection.Iterator[T] {
	return &nodeIterator[T]{current: q.head}
}

func (q *Queue[T]) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	for n := q.head; n != nil; n = n.next {
		if n != q.head {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprint(n.data))
	}
	b.WriteString("]")
	return b.String()
}

func (q *Queue[T]) checkRoom(n int) error {
	if q.limit > 0 && q.size+n > q.limit {
		return fmt.Errorf("%w: limit of %d elements reached", collection.ErrQueueOverflow, q.limit)
	}
	return nil
}

type nodeIterator[T any] struct {
	current *node[T]
}

func (it *nodeIterator[T]) HasNext() bool {
	return it.current != nil
}

func (it *nodeIterator[T]) Next() (T, error) {
	if it.current == nil {
		var zero T
		return zero, fmt.Errorf("%w: end of queue", collection.ErrEndOfSequence)
	}
	v := it.current.data
	it.current = it.current.next
	return v, nil
}
