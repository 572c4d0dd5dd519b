// Package strConcat implements a text accumulator which collects
// fragments in a growable byte buffer.
package strConcat

import (
	"fmt"
	"github.com/hneemann/collection"
	"github.com/hneemann/collection/buffer"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"unicode/utf8"
)

// Concatenator collects text fragments byte by byte, so fragments which
// are not valid UTF-8 are kept unchanged. Its size is the number of runes
// appended since the creation or the last flush.
type Concatenator struct {
	data *buffer.Buffer[byte]
}

// New creates a concatenator with the default capacity
func New() *Concatenator {
	return &Concatenator{data: buffer.New[byte](collection.DefaultCapacity)}
}

// NewCap creates a concatenator with the given initial capacity in bytes
func NewCap(capacity int) (*Concatenator, error) {
	if err := collection.CheckCapacity(capacity); err != nil {
		return nil, err
	}
	return &Concatenator{data: buffer.New[byte](capacity)}, nil
}

// Append adds the given text. The concatenator is returned to allow chaining.
func (c *Concatenator) Append(text string) *Concatenator {
	for i := 0; i < len(text); i++ {
		c.data.Append(text[i])
	}
	return c
}

// Size returns the number of runes. Every byte of an invalid
// UTF-8 sequence counts as one rune.
func (c *Concatenator) Size() int {
	return utf8.RuneCount(c.data.Items())
}

// Build returns the accumulated text. The concatenator is not cleared.
func (c *Concatenator) Build() string {
	return string(c.data.Items())
}

// Flush returns the accumulated text and clears the concatenator.
// The capacity is retained.
func (c *Concatenator) Flush() string {
	s := c.Build()
	c.data.Truncate()
	return s
}

func (c *Concatenator) String() string {
	return c.Build()
}

// Encode returns the accumulated text in the given encoding.
// The concatenator is not cleared.
func (c *Concatenator) Encode(enc encoding.Encoding) ([]byte, error) {
	if enc == nil {
		return nil, fmt.Errorf("%w: no encoding given", collection.ErrNullValue)
	}
	b, err := enc.NewEncoder().Bytes([]byte(c.Build()))
	if err != nil {
		return nil, fmt.Errorf("could not encode text: %w", err)
	}
	return b, nil
}

const (
	EncodingUTF8     = "UTF-8"
	EncodingUTF8BOM  = "UTF-8-BOM"
	EncodingGBK      = "GBK"
	EncodingGB18030  = "GB18030"
	EncodingHZGB2312 = "HZ-GB2312"
)

// EncodingByName returns the encoding with the given name
func EncodingByName(name string) (encoding.Encoding, error) {
	switch name {
	case EncodingUTF8:
		return unicode.UTF8, nil
	case EncodingUTF8BOM:
		return unicode.UTF8BOM, nil
	case EncodingGBK:
		return simplifiedchinese.GBK, nil
	case EncodingGB18030:
		return simplifiedchinese.GB18030, nil
	case EncodingHZGB2312:
		return simplifiedchinese.HZGB2312, nil
	default:
		return nil, fmt.Errorf("%w: unknown encoding '%s'", collection.ErrInvalidArgument, name)
	}
}
