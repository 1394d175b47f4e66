package search

// stateItem is one frontier entry: a deduplication key, the accumulated
// cost g (equal to the arrival step, since every move costs one step),
// the priority f = g + h, and the push sequence number that makes the
// ordering total.
type stateItem struct {
	key State
	g   int
	f   float64
	seq int
}

// statePQ is a min-heap of frontier entries under the documented total
// order: f ascending, then g descending (prefer deeper states over more
// speculative ones), then push sequence ascending. The engine uses lazy
// decrease-key: improved states are pushed again and stale entries are
// skipped on pop via the visited set.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less implements the deterministic frontier order.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g > pq[j].g
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *stateItem.
func (pq *statePQ) Push(x any) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the smallest element. Called by heap.Pop.
func (pq *statePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
