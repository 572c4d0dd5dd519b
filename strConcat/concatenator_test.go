package strConcat

import (
	"errors"
	"github.com/hneemann/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestConcatenate(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		want      string
	}{
		{name: "none", fragments: nil, want: ""},
		{name: "empty", fragments: []string{"", ""}, want: ""},
		{name: "single", fragments: []string{"Hello"}, want: "Hello"},
		{name: "grow", fragments: []string{"Hello", " ", "World", "!"}, want: "Hello World!"},
		{name: "unicode", fragments: []string{"Grüße", ", ", "世界"}, want: "Grüße, 世界"},
		{name: "invalid utf8", fragments: []string{"a\xffb"}, want: "a\xffb"},
		{name: "split rune", fragments: []string{"\xe4", "\xb8\xad", "!"}, want: "中!"},
	}
	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			c := New()
			for _, f := range test.fragments {
				c.Append(f)
			}
			assert.Equal(t, len([]rune(test.want)), c.Size())
			assert.Equal(t, test.want, c.Build())
			assert.Equal(t, test.want, c.String())
			assert.Equal(t, test.want, c.Flush())
			assert.Equal(t, 0, c.Size())
			assert.Equal(t, "", c.Build())
		})
	}
}

func TestSizeCountsRunes(t *testing.T) {
	c := New().Append("a\xffb")
	assert.Equal(t, 3, c.Size())
	c.Append("中")
	assert.Equal(t, 4, c.Size())
	assert.Equal(t, "a\xffb中", c.Flush())
	assert.Equal(t, 0, c.Size())
}

func TestChaining(t *testing.T) {
	c := New().Append("a").Append("b").Append("c")
	assert.Equal(t, "abc", c.Build())
	assert.Equal(t, "abc", c.Build())
}

func TestFlushKeepsCapacity(t *testing.T) {
	c := New().Append("0123456789")
	capacity := c.data.Cap()
	assert.Equal(t, "0123456789", c.Flush())
	assert.Equal(t, capacity, c.data.Cap())

	c.Append("xy")
	assert.Equal(t, "xy", c.Build())
}

func TestCapacity(t *testing.T) {
	c, err := NewCap(0)
	require.NoError(t, err)
	assert.Equal(t, "abc", c.Append("abc").Build())

	c, err = NewCap(-1)
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, collection.ErrInvalidArgument))
}

func TestEncode(t *testing.T) {
	c := New().Append("中文")

	enc, err := EncodingByName(EncodingGBK)
	require.NoError(t, err)
	b, err := c.Encode(enc)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xd6, 0xd0, 0xce, 0xc4}, b)

	enc, err = EncodingByName(EncodingUTF8BOM)
	require.NoError(t, err)
	b, err = c.Encode(enc)
	assert.NoError(t, err)
	assert.Equal(t, append([]byte{0xef, 0xbb, 0xbf}, []byte("中文")...), b)

	assert.Equal(t, "中文", c.Build())

	_, err = c.Encode(nil)
	assert.True(t, errors.Is(err, collection.ErrNullValue))
}

func TestEncodingByName(t *testing.T) {
	for _, name := range []string{EncodingUTF8, EncodingUTF8BOM, EncodingGBK, EncodingGB18030, EncodingHZGB2312} {
		enc, err := EncodingByName(name)
		assert.NoError(t, err, name)
		assert.NotNil(t, enc, name)
	}
	_, err := EncodingByName("EBCDIC")
	assert.True(t, errors.Is(err, collection.ErrInvalidArgument))
}
