// Package buffer implements the doubling array storage shared by the
// array based containers.
package buffer

// ResizeFactor is the factor the capacity is multiplied with if the buffer is full.
const ResizeFactor = 2

// Buffer is a growable array. The capacity is the length of the
// backing array, size is the number of slots in use.
type Buffer[T any] struct {
	data []T
	size int
}

// New creates a buffer with the given capacity.
// The capacity must not be negative.
func New[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{data: make([]T, capacity)}
}

func (b *Buffer[T]) Size() int {
	return b.size
}

func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Get returns the element at index n. The index is not checked
// against the size, the caller has to do that.
func (b *Buffer[T]) Get(n int) T {
	return b.data[n]
}

func (b *Buffer[T]) Set(n int, v T) {
	b.data[n] = v
}

// Append adds an element at the end and grows the buffer if it is full.
func (b *Buffer[T]) Append(v T) {
	if b.size >= len(b.data) {
		b.grow()
	}
	b.data[b.size] = v
	b.size++
}

// RemoveAt removes the element at index n and shifts all
// following elements one slot to the left.
func (b *Buffer[T]) RemoveAt(n int) T {
	removed := b.data[n]
	copy(b.data[n:b.size], b.data[n+1:b.size])
	b.size--
	var zero T
	b.data[b.size] = zero
	return removed
}

// RemoveLast removes the element at index size-1.
func (b *Buffer[T]) RemoveLast() T {
	b.size--
	removed := b.data[b.size]
	var zero T
	b.data[b.size] = zero
	return removed
}

// Truncate sets the size to zero. The capacity is retained.
func (b *Buffer[T]) Truncate() {
	clear(b.data[:b.size])
	b.size = 0
}

// Index returns the index of the first element accepted by the
// given function or -1 if there is none.
func (b *Buffer[T]) Index(accept func(T) bool) int {
	for i := 0; i < b.size; i++ {
		if accept(b.data[i]) {
			return i
		}
	}
	return -1
}

// Items returns a copy of the elements in use.
func (b *Buffer[T]) Items() []T {
	c := make([]T, b.size)
	copy(c, b.data[:b.size])
	return c
}

func (b *Buffer[T]) grow() {
	newCap := len(b.data) * ResizeFactor
	if newCap == 0 {
		newCap = 1
	}
	newData := make([]T, newCap)
	copy(newData, b.data[:b.size])
	b.data = newData
}
