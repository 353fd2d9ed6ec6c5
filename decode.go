package huffman

import (
	"fmt"
)

// Decode recovers the byte sequence encoded as a '0'/'1' bit string by
// walking root.  Each completed root-to-leaf walk emits one symbol.  Bits
// that end partway down the tree are accepted and emit nothing.
//
// A nil root decodes only the empty string; any other input returns
// ErrNoTree.  A character outside '0'/'1', or a walk that steps into a
// missing child of a hand-assembled tree, returns a *DecodeError locating
// the offending bit.
func Decode(encoded string, root *Node) ([]byte, error) {
	if root == nil {
		if encoded == "" {
			return nil, nil
		}
		return nil, ErrNoTree
	}

	out := make([]byte, 0, len(encoded))
	n := root
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c != '0' && c != '1' {
			return nil, &DecodeError{Offset: i, Msg: fmt.Sprintf("invalid bit character %q", c)}
		}

		if !n.Leaf() {
			if c == '0' {
				n = n.Left
			} else {
				n = n.Right
			}
			if n == nil {
				return nil, &DecodeError{Offset: i, Msg: "dead end in tree"}
			}
		}

		if n.Leaf() {
			out = append(out, n.Symbol)
			n = root
		}
	}
	return out, nil
}
