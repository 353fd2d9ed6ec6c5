package huffman

import (
	"github.com/chronos-tachyon/assert"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffman")

// Encode compresses data into a '0'/'1' bit string, returning the string
// and the root of the tree that decodes it.  The caller keeps the tree and
// hands it back to Decode.
//
// Empty input yields the empty string and a nil tree.
func Encode(data []byte) (string, *Node) {
	if len(data) == 0 {
		return "", nil
	}

	entries := countFrequencies(data)
	root := buildTree(entries)
	table := NewCodeTable(root)

	encoded, err := table.Encode(data)
	assert.Assertf(err == nil, "table lookup failed for a counted symbol: %v", err)
	log.Debug("encoded %d bytes to %d bits", len(data), len(encoded))
	return encoded, root
}
