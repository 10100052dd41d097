package forwardlist

// Link appends a deep copy of other's elements to the end of l, leaving
// other unmodified. The copy's first value reuses the current tail
// sentinel's storage (saving one allocation) and the copy's tail sentinel
// becomes the new end; cursors previously obtained from End dangle. O(n) in
// the size of other. Linking a list to itself doubles it.
func (l *List[T]) Link(other *List[T]) {
	if other == nil || other.Empty() {
		return
	}
	// copy first so the two instances never share node ownership
	cp := other.cloneChain()
	first := cp.head.succ
	l.tail.val = first.val
	l.tail.succ = first.succ
	l.tail = cp.tail
	l.size += cp.size
	l.trace.linked(cp.size, l.size)
}

// Merge merges a deep copy of other into l so the result is sorted in the
// given order, relinking nodes rather than copying values. Both operands are
// assumed sorted in that order; with validation on, an unsorted operand is
// sorted first. Ties take l's element first and every element of both
// operands appears in the result, so the outcome is the multiset union.
// other is left unmodified. The tail sentinel of whichever chain supplied
// the final node becomes the new end. O(n+m).
func (l *List[T]) Merge(other *List[T], order Order) {
	if other == nil || other.Empty() {
		return
	}
	cp := other.cloneChain()
	if l.validate {
		if !l.Sorted(order) {
			l.Sort(order)
		}
		if !cp.Sorted(order) {
			cp.Sort(order)
		}
	}

	var (
		i, endI = l.head.succ, l.tail
		j, endJ = cp.head.succ, cp.tail
		h       = l.head
		total   = 0
	)
	for i != endI && j != endJ {
		if !less(order, j.val, i.val) { // left run first on ties
			h.succ = i
			h = i
			i = i.succ
		} else {
			h.succ = j
			h = j
			j = j.succ
		}
		total++
	}
	for i != endI {
		h.succ = i
		h = i
		i = i.succ
		total++
	}
	for j != endJ {
		h.succ = j
		h = j
		j = j.succ
		total++
	}
	// the final node still points at its own chain's sentinel; adopt it
	l.tail = h.succ
	l.size = total
	l.trace.merged(cp.size, l.size)
}
