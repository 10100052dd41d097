package forwardlist

// Sort sorts the list in the given order with an in-place merge sort over
// the node chain: no nodes are allocated and no values are copied between
// nodes (except the two-node base case, which swaps values). The tail
// sentinel is never touched; runs terminate before it. O(n log n)
// comparisons, O(log n) stack.
func (l *List[T]) Sort(order Order) {
	if l.size > 1 {
		l.sortRun(l.head, l.size, order)
	}
	l.trace.sortDone(order, l.size)
}

// sortRun sorts the run of bound nodes immediately after anchor and returns
// the run's final node, which becomes the anchor for any run that follows.
// The run's head is not returned: anchor's successor already denotes it.
func (l *List[T]) sortRun(anchor *node[T], bound int, order Order) *node[T] {
	switch bound {
	case 0:
		return nil
	case 1:
		return anchor.succ
	case 2:
		return l.sortPair(anchor, order)
	}
	half := bound / 2
	mid := l.sortRun(anchor, half, order)
	last := l.sortRun(mid, bound-half, order)
	return l.spliceMerge(anchor, mid, last, order)
}

// sortPair orders the two nodes after anchor by swapping their values, not
// their links, and returns the second.
func (l *List[T]) sortPair(anchor *node[T], order Order) *node[T] {
	a, b := anchor.succ, anchor.succ.succ
	if less(order, b.val, a.val) {
		a.val, b.val = b.val, a.val
	}
	return b
}

// spliceMerge merges the sorted, chain-adjacent runs (anchor, mid] and
// (mid, last] by relinking, writing through a cursor that starts at anchor.
// Ties take the left run. Every node of both runs is visited exactly once as
// a source and once as a link target. Returns the node that ends the merged
// run: whichever run's final node is the overall extreme under order, found
// by one direct comparison.
//
// The run boundaries mid.succ and last.succ are read fresh on every
// iteration; they are only rewritten once the corresponding run is
// exhausted, at which point the stale read terminates the loop.
func (l *List[T]) spliceMerge(anchor, mid, last *node[T], order Order) *node[T] {
	var (
		i    = anchor.succ
		j    = mid.succ
		rest = last.succ // continuation of the chain after both runs
		h    = anchor
	)
	for i != mid.succ && j != last.succ {
		if !less(order, j.val, i.val) {
			h.succ = i
			h = i
			i = i.succ
		} else {
			h.succ = j
			h = j
			j = j.succ
		}
	}
	for i != mid.succ {
		h.succ = i
		h = i
		i = i.succ
	}
	for j != last.succ {
		h.succ = j
		h = j
		j = j.succ
	}
	h.succ = rest
	if less(order, last.val, mid.val) {
		return mid
	}
	return last
}
