package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSymbol is returned by CodeTable.Encode when the input
	// contains a byte that has no assigned code.
	ErrUnknownSymbol = errors.New("huffman: symbol missing from code table")

	// ErrNoTree is returned by Decode when the encoded input is non-empty
	// but no tree was supplied to decode it with.
	ErrNoTree = errors.New("huffman: decode without a tree")
)

// DecodeError reports malformed encoded input and the bit offset at which
// decoding failed.
type DecodeError struct {
	Offset int
	Msg    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("huffman: %s at bit %d", e.Msg, e.Offset)
}

var _ error = (*DecodeError)(nil)
