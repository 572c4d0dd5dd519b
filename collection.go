// Package collection provides simple generic in-memory containers: an
// array based list, an array based map, an array based stack and a linked
// queue. All containers reject absent values (nil pointers, nil interfaces,
// ...), grow on demand and are created empty.
//
// Elements are compared with ==. Values whose dynamic type is not
// comparable, like a slice stored in an interface, are rejected with
// ErrInvalidArgument when they are added.
//
// None of the containers is safe for concurrent use. Iterators are not
// protected against structural modification of the container they traverse;
// if the container is modified during an iteration the result is undefined.
package collection

import (
	"fmt"
	"github.com/hneemann/iterator"
	"reflect"
)

// DefaultCapacity is the initial capacity used by the constructors
// which do not take an explicit capacity.
const DefaultCapacity = 6

// Collection is the set of operations all linear containers share.
type Collection[T any] interface {
	// Size returns the number of elements
	Size() int
	// IsEmpty returns true if there are no elements
	IsEmpty() bool
	// Add adds a single element.
	Add(item T) (bool, error)
	// AddAll adds all elements of the given producer in the order
	// they are produced. If the producer yields an absent value or an
	// error, the collection remains unchanged.
	AddAll(items iterator.Producer[T]) (bool, error)
	// Contains checks if the item is present
	Contains(item T) (bool, error)
	// Remove removes the first occurrence of the item
	Remove(item T) (bool, error)
	// Clear removes all elements
	Clear()
	// Iter returns a lazy producer of all elements.
	// Every call of the producer starts at the first element.
	Iter() iterator.Producer[T]
	// Iterator returns a new cursor positioned before the first element.
	Iterator() Iterator[T]
}

// Sequence is a collection with index based access
type Sequence[T any] interface {
	Collection[T]
	// Get returns the element at the given index
	Get(index int) (T, error)
	// RemoveAt removes the element at the given index and returns it
	RemoveAt(index int) (T, error)
	// Index returns the index of the first occurrence of the item or -1
	Index(item T) (int, error)
}

// Stack is a collection with LIFO access
type Stack[T any] interface {
	Collection[T]
	Push(item T) error
	Pop() (T, error)
	Peek() (T, error)
}

// Queue is a collection with FIFO access
type Queue[T any] interface {
	Collection[T]
	Enqueue(item T) error
	Dequeue() (T, error)
	Peek() (T, error)
}

// Dictionary maps unique keys to values. Iter and Iterator
// visit the keys.
type Dictionary[K comparable, V comparable] interface {
	Size() int
	IsEmpty() bool
	// Put adds the pair or replaces the value of an existing key
	Put(key K, v V) (bool, error)
	// Get returns the value of the key, false if the key is not present
	Get(key K) (V, bool)
	// Remove removes the key, false if the key is not present
	Remove(key K) bool
	Clear()
	Keys() *List[K]
	Values() *List[V]
	Iter() iterator.Producer[K]
	Iterator() Iterator[K]
}

// Iterator is a forward cursor over the elements of a container.
type Iterator[T any] interface {
	// HasNext returns true if a call to Next will return an element
	HasNext() bool
	// Next returns the next element or ErrEndOfSequence
	Next() (T, error)
}

// IsNull returns true if the given value is absent, which means it is
// nil or a nil pointer, interface, channel, func, map or slice.
func IsNull[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func,
		reflect.Map, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// CheckComparable returns an error if the dynamic value of v can not be
// compared with ==, like a slice stored in an interface. Such values are
// not stored, so lookups never compare two uncomparable values.
func CheckComparable[T any](v T) error {
	if !reflect.ValueOf(any(v)).Comparable() {
		return fmt.Errorf("%w: value of type %T is not comparable", ErrInvalidArgument, v)
	}
	return nil
}

// CheckCapacity returns an error if the given initial capacity is negative.
func CheckCapacity(capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, capacity)
	}
	return nil
}

// CheckLimit returns an error if the given limit of a bounded container is not positive.
func CheckLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("%w: limit %d needs to be positive", ErrInvalidArgument, limit)
	}
	return nil
}

// StageAll reads all items from the producer into a slice.
// An absent item or an error returned by the producer stops reading
// and is returned. The containers use it to validate the complete
// source before they are modified.
func StageAll[T any](items iterator.Producer[T]) ([]T, error) {
	if items == nil {
		return nil, fmt.Errorf("%w: cannot add a nil producer", ErrNullValue)
	}
	var staged []T
	var innerErr error
	items(func(v T, err error) bool {
		if err != nil {
			innerErr = err
			return false
		}
		if IsNull(v) {
			innerErr = fmt.Errorf("%w: producer yields a nil item at position %d", ErrNullValue, len(staged))
			return false
		}
		if err := CheckComparable(v); err != nil {
			innerErr = err
			return false
		}
		staged = append(staged, v)
		return true
	})
	if innerErr != nil {
		return nil, innerErr
	}
	return staged, nil
}
