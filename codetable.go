package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each symbol to its code, a non-empty string over "01".  No
// code is a prefix of another.
type CodeTable map[byte]string

// NewCodeTable derives the code for every leaf reachable from root, which
// must be non-nil.  Left edges contribute '0' and right edges '1'.
//
// A bare-leaf tree has no edges to spell a code with, so its single symbol
// is assigned "0".
func NewCodeTable(root *Node) CodeTable {
	assert.Assertf(root != nil, "NewCodeTable with nil root")

	table := make(CodeTable)
	if root.Leaf() {
		table[root.Symbol] = "0"
		return table
	}

	type stackItem struct {
		node *Node
		path string
	}

	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{root, ""})
	for len(stack) != 0 {
		last := len(stack) - 1
		item := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]

		if item.node.Leaf() {
			table[item.node.Symbol] = item.path
			continue
		}
		stack = append(stack, stackItem{item.node.Right, item.path + "1"})
		stack = append(stack, stackItem{item.node.Left, item.path + "0"})
	}
	return table
}

// Encode concatenates the code for each byte of data.  It returns
// ErrUnknownSymbol if data contains a byte absent from the table.
func (t CodeTable) Encode(data []byte) (string, error) {
	var sb strings.Builder
	for _, b := range data {
		code, found := t[b]
		if !found {
			return "", ErrUnknownSymbol
		}
		sb.WriteString(code)
	}
	return sb.String(), nil
}

// Dump writes a programmer-readable debugging dump of the table to the
// given writer, one symbol per line in ascending symbol order.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	symbols := make([]int, 0, len(t))
	for b := range t {
		symbols = append(symbols, int(b))
	}
	sort.Ints(symbols)
	for _, symbol := range symbols {
		fmt.Fprintf(&buf, "\t%q = %q\n", byte(symbol), t[byte(symbol)])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
