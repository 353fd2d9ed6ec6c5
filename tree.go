package huffman

// freqEntry pairs a distinct input byte with its occurrence count and the
// leaf node built for it.
type freqEntry struct {
	weight int
	symbol byte
	node   *Node
}

// countFrequencies scans data and returns one entry per distinct byte, each
// carrying a freshly built leaf.  The result is nil when data is empty.
func countFrequencies(data []byte) []freqEntry {
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}

	distinct := 0
	for _, count := range counts {
		if count != 0 {
			distinct++
		}
	}
	if distinct == 0 {
		return nil
	}

	entries := make([]freqEntry, 0, distinct)
	for symbol, count := range counts {
		if count == 0 {
			continue
		}
		leaf := &Node{Weight: count, Symbol: byte(symbol)}
		entries = append(entries, freqEntry{weight: count, symbol: byte(symbol), node: leaf})
	}
	return entries
}

// buildTree assembles a Huffman tree from frequency entries and returns its
// root, or nil when entries is empty.  A single entry yields a bare leaf.
//
// The two lightest entries are merged repeatedly, with ties on weight broken
// by entry order, so the resulting tree is a pure function of the input
// frequencies.  The first entry extracted from a pair becomes the left
// child.
func buildTree(entries []freqEntry) *Node {
	if len(entries) == 0 {
		return nil
	}

	q := buildQueue{list: make([]queueEntry, 0, len(entries))}
	for _, e := range entries {
		q.list = append(q.list, queueEntry{weight: e.weight, order: int(e.symbol), node: e.node})
	}
	q.Init()

	nextOrder := internalOrderBase
	for q.Len() > 1 {
		a := q.extractMin()
		b := q.extractMin()
		parent := &Node{
			Weight: a.weight + b.weight,
			Left:   a.node,
			Right:  b.node,
		}
		q.insert(queueEntry{weight: parent.Weight, order: nextOrder, node: parent})
		nextOrder++
	}

	root := q.extractMin().node
	log.Debug("built tree: %d leaves, root weight %d", len(entries), root.Weight)
	return root
}
