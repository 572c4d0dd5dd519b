package buffer

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestAppendGrows(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		n       int
		wantCap int
	}{
		{name: "no grow", initial: 6, n: 6, wantCap: 6},
		{name: "one grow", initial: 6, n: 7, wantCap: 12},
		{name: "two grows", initial: 6, n: 13, wantCap: 24},
		{name: "zero capacity", initial: 0, n: 1, wantCap: 1},
		{name: "zero capacity doubling", initial: 0, n: 5, wantCap: 8},
	}
	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			b := New[int](test.initial)
			for i := 0; i < test.n; i++ {
				b.Append(i)
			}
			assert.Equal(t, test.n, b.Size())
			assert.Equal(t, test.wantCap, b.Cap())
			for i := 0; i < test.n; i++ {
				assert.Equal(t, i, b.Get(i))
			}
		})
	}
}

func TestRemoveAt(t *testing.T) {
	b := New[string](2)
	b.Append("a")
	b.Append("b")
	b.Append("c")
	b.Append("d")

	assert.Equal(t, "b", b.RemoveAt(1))
	assert.Equal(t, []string{"a", "c", "d"}, b.Items())
	assert.Equal(t, "d", b.RemoveAt(2))
	assert.Equal(t, []string{"a", "c"}, b.Items())
	assert.Equal(t, "a", b.RemoveAt(0))
	assert.Equal(t, []string{"c"}, b.Items())
	assert.Equal(t, 4, b.Cap())
}

func TestRemoveLast(t *testing.T) {
	b := New[int](1)
	b.Append(1)
	b.Append(2)
	assert.Equal(t, 2, b.RemoveLast())
	assert.Equal(t, 1, b.RemoveLast())
	assert.Equal(t, 0, b.Size())
}

func TestTruncate(t *testing.T) {
	b := New[int](3)
	b.Truncate()
	assert.Equal(t, 0, b.Size())

	for i := 0; i < 10; i++ {
		b.Append(i)
	}
	c := b.Cap()
	b.Truncate()
	assert.Equal(t, 0, b.Size())
	assert.Equal(t, c, b.Cap())
	assert.Empty(t, b.Items())

	b.Append(7)
	assert.Equal(t, []int{7}, b.Items())
}

func TestIndex(t *testing.T) {
	b := New[int](4)
	b.Append(3)
	b.Append(5)
	b.Append(5)

	assert.Equal(t, 1, b.Index(func(i int) bool { return i == 5 }))
	assert.Equal(t, -1, b.Index(func(i int) bool { return i == 7 }))
}

func TestItemsIsCopy(t *testing.T) {
	b := New[int](2)
	b.Append(1)
	items := b.Items()
	items[0] = 42
	assert.Equal(t, 1, b.Get(0))
}
