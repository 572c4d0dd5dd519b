// Package listMap implements a map which stores its keys and values in
// two parallel growable arrays. Lookups are linear, the insertion order
// is preserved.
package listMap

import (
	"bytes"
	"fmt"
	"github.com/hneemann/collection"
	"github.com/hneemann/collection/buffer"
	"github.com/hneemann/iterator"
)

// ListMap maps keys to values. keys.Get(i) belongs to values.Get(i),
// there are no duplicate keys.
type ListMap[K comparable, V comparable] struct {
	keys   *buffer.Buffer[K]
	values *buffer.Buffer[V]
}

var _ collection.Dictionary[string, int] = (*ListMap[string, int])(nil)

// New creates an empty map with the default capacity
func New[K comparable, V comparable]() *ListMap[K, V] {
	return &ListMap[K, V]{
		keys:   buffer.New[K](collection.DefaultCapacity),
		values: buffer.New[V](collection.DefaultCapacity),
	}
}

// NewCap creates an empty map with the given initial capacity
func NewCap[K comparable, V comparable](capacity int) (*ListMap[K, V], error) {
	if err := collection.CheckCapacity(capacity); err != nil {
		return nil, err
	}
	return &ListMap[K, V]{
		keys:   buffer.New[K](capacity),
		values: buffer.New[V](capacity),
	}, nil
}

func (l *ListMap[K, V]) Size() int {
	return l.keys.Size()
}

func (l *ListMap[K, V]) IsEmpty() bool {
	return l.keys.Size() == 0
}

// Put stores the value with the given key. If the key is already
// present, its value is replaced.
func (l *ListMap[K, V]) Put(key K, v V) (bool, error) {
	if collection.IsNull(key) {
		return false, fmt.Errorf("%w: key must not be nil", collection.ErrNullValue)
	}
	if collection.IsNull(v) {
		return false, fmt.Errorf("%w: value of key '%v' must not be nil", collection.ErrNullValue, key)
	}
	if err := collection.CheckComparable(key); err != nil {
		return false, err
	}
	if err := collection.CheckComparable(v); err != nil {
		return false, err
	}
	if i := l.indexOf(key); i >= 0 {
		l.values.Set(i, v)
		return true, nil
	}
	l.keys.Append(key)
	l.values.Append(v)
	return true, nil
}

// Get returns the value of the given key. If the key is
// not found, false is returned.
func (l *ListMap[K, V]) Get(key K) (V, bool) {
	if i := l.indexOf(key); i >= 0 {
		return l.values.Get(i), true
	}
	var zero V
	return zero, false
}

func (l *ListMap[K, V]) ContainsKey(key K) bool {
	return l.indexOf(key) >= 0
}

// Remove removes the key and its value. Returns false if the key is not present.
func (l *ListMap[K, V]) Remove(key K) bool {
	i := l.indexOf(key)
	if i < 0 {
		return false
	}
	l.keys.RemoveAt(i)
	l.values.RemoveAt(i)
	return true
}

func (l *ListMap[K, V]) Clear() {
	l.keys.Truncate()
	l.values.Truncate()
}

// Keys returns a new list containing the keys in insertion order
func (l *ListMap[K, V]) Keys() *collection.List[K] {
	return snapshot(l.keys)
}

// Values returns a new list containing the values in insertion order
func (l *ListMap[K, V]) Values() *collection.List[V] {
	return snapshot(l.values)
}

func snapshot[T comparable](b *buffer.Buffer[T]) *collection.List[T] {
	list, err := collection.NewListOf(b.Items()...)
	if err != nil {
		// the buffer never contains nil values
		panic(err)
	}
	return list
}

// Iter returns a producer of the keys
func (l *ListMap[K, V]) Iter() iterator.Producer[K] {
	return collection.NewIndexProducer(l.keys.Size, l.keys.Get)
}

// Iterator returns an iterator over the keys
func (l *ListMap[K, V]) Iterator() collection.Iterator[K] {
	return collection.NewIndexIterator(l.keys.Size, l.keys.Get)
}

// Entries calls yield for all key/value pairs in insertion order.
// If yield returns false, the iteration stops and false is returned.
func (l *ListMap[K, V]) Entries(yield func(key K, v V) bool) bool {
	for i := 0; i < l.keys.Size(); i++ {
		if !yield(l.keys.Get(i), l.values.Get(i)) {
			return false
		}
	}
	return true
}

func (l *ListMap[K, V]) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	l.Entries(func(key K, v V) bool {
		if first {
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprint(key))
		b.WriteString(":")
		b.WriteString(fmt.Sprint(v))
		return true
	})
	b.WriteString("}")
	return b.String()
}

func (l *ListMap[K, V]) indexOf(key K) int {
	if collection.IsNull(key) {
		return -1
	}
	return l.keys.Index(func(k K) bool { return k == key })
}
