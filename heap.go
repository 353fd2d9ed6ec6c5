package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// internalOrderBase is the first order value assigned to internal nodes.
// Leaf orders occupy 0 through 255.
const internalOrderBase = 256

// type queueEntry + type buildQueue {{{

// queueEntry is one element of the tree builder's queue.  Ordering looks
// only at (weight, order); the node payload never participates.
//
// order makes every entry distinct: leaves use their symbol value and
// internal nodes use consecutive integers starting at internalOrderBase.
// Extraction order is therefore a pure function of the queue's contents.
type queueEntry struct {
	weight int
	order  int
	node   *Node
}

type buildQueue struct {
	list []queueEntry
}

func (q *buildQueue) Init() {
	heap.Init(q)
}

func (q *buildQueue) Len() int {
	return len(q.list)
}

func (q *buildQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *buildQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.order < b.order
}

func (q *buildQueue) Push(x interface{}) {
	q.list = append(q.list, x.(queueEntry))
}

func (q *buildQueue) Pop() interface{} {
	last := uint(len(q.list)) - 1
	x := q.list[last]
	q.list[last] = queueEntry{}
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*buildQueue)(nil)

// }}}

// insert adds an entry to the queue.
func (q *buildQueue) insert(e queueEntry) {
	heap.Push(q, e)
}

// extractMin removes and returns the entry with the smallest
// (weight, order).  The queue must not be empty.
func (q *buildQueue) extractMin() queueEntry {
	assert.Assertf(q.Len() > 0, "extractMin on empty queue")
	return heap.Pop(q).(queueEntry)
}
