package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Node is a node in a Huffman tree.  A leaf carries a Symbol; an internal
// node carries its two children.  Weight is the total frequency of every
// symbol beneath the node.
//
// Trees built by this package are strict: a node has either zero children or
// two, never one.
type Node struct {
	Weight int
	Symbol byte
	Left   *Node
	Right  *Node
}

// Leaf reports whether this node is a leaf.  Symbol is only meaningful on
// leaves.
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

// Dump writes a programmer-readable debugging dump of the subtree rooted at
// this node to the given writer.  Nodes are listed in preorder, keyed by the
// bit path that reaches them.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Node{\n")

	type stackItem struct {
		node *Node
		path string
	}

	stack := make([]stackItem, 0, 16)
	if n != nil {
		stack = append(stack, stackItem{n, ""})
	}
	for len(stack) != 0 {
		last := len(stack) - 1
		item := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]

		if item.node.Leaf() {
			fmt.Fprintf(&buf, "\t%s = {symbol %q, weight %d}\n", strconv.Quote(item.path), item.node.Symbol, item.node.Weight)
			continue
		}
		fmt.Fprintf(&buf, "\t%s = {weight %d}\n", strconv.Quote(item.path), item.node.Weight)
		stack = append(stack, stackItem{item.node.Right, item.path + "1"})
		stack = append(stack, stackItem{item.node.Left, item.path + "0"})
	}

	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
