package huffman

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// BitString is the packed form of an encoded bit string: eight bits per
// byte, first bit in the most significant position.  Unused low bits of the
// final byte are zero.
type BitString struct {
	// Packed holds the bits, most significant bit first.
	Packed []byte

	// BitLength holds the number of valid bits.
	BitLength int
}

// PackBits packs a '0'/'1' string into a BitString.  A character outside
// '0'/'1' returns a *DecodeError locating it.
func PackBits(bits string) (BitString, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for i := 0; i < len(bits); i++ {
		c := bits[i]
		if c != '0' && c != '1' {
			return BitString{}, &DecodeError{Offset: i, Msg: fmt.Sprintf("invalid bit character %q", c)}
		}
		w.WriteBool(c == '1')
	}
	w.Close()
	return BitString{Packed: buf.Bytes(), BitLength: len(bits)}, nil
}

// Bits expands the packed bits back into their '0'/'1' text form.
func (bs BitString) Bits() string {
	assert.Assertf(bs.BitLength <= 8*len(bs.Packed), "BitLength %d exceeds %d stored bits", bs.BitLength, 8*len(bs.Packed))

	r := bitio.NewReader(bytes.NewReader(bs.Packed))
	var sb strings.Builder
	sb.Grow(bs.BitLength)
	for i := 0; i < bs.BitLength; i++ {
		bit, _ := r.ReadBool()
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// String returns the quoted text form of the bits.
func (bs BitString) String() string {
	return strconv.Quote(bs.Bits())
}

var _ fmt.Stringer = BitString{}
