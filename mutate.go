package forwardlist

import "cmp"

// Assign overwrites the element at pos. pos must reference a real node;
// assigning through a sentinel is an underflow/overflow violation.
func (l *List[T]) Assign(pos Cursor[T], v T) {
	pos.deref("Assign")
	pos.n.val = v
}

// InsertAfter splices one new element holding v immediately after pos. When
// pos matches none of the list's current predecessor positions the value is
// appended at the back instead; that fallback is defensive, not an error.
// Locating pos costs a scan from before-begin since predecessor links are
// not stored; each spliced node is O(1) after that.
func (l *List[T]) InsertAfter(pos Cursor[T], v T) {
	l.InsertAfterN(pos, v, 1)
}

// InsertAfterN splices n new elements holding v after pos, built front to
// back. n below one is a no-op.
func (l *List[T]) InsertAfterN(pos Cursor[T], v T, n int) {
	if n < 1 {
		return
	}
	for at := l.head; at.succ != l.tail; at = at.succ {
		if at != pos.n {
			continue
		}
		for i := 0; i < n; i++ {
			at.succ = &node[T]{val: v, succ: at.succ}
			at = at.succ
			l.size++
		}
		l.trace.inserted(n, l.size)
		return
	}
	// unmatched position: append at the back
	for i := 0; i < n; i++ {
		l.append(v)
	}
	l.trace.inserted(n, l.size)
}

// append adds v at the back by promoting the tail sentinel to a real node
// and allocating a fresh sentinel. O(1).
func (l *List[T]) append(v T) {
	l.tail.val = v
	l.tail.succ = &node[T]{}
	l.tail = l.tail.succ
	l.size++
}

// PushBack appends v in O(1).
func (l *List[T]) PushBack(v T) {
	l.append(v)
	l.trace.inserted(1, l.size)
}

// PushFront prepends v by splicing after the before-begin sentinel. O(1).
func (l *List[T]) PushFront(v T) {
	l.InsertAfter(l.CBeforeBegin(), v)
}

// PopBack removes the last element, locating its predecessor by scan. No-op
// on an empty list. O(n).
func (l *List[T]) PopBack() {
	if l.Empty() {
		return
	}
	pred := l.head
	for pred.succ.succ != l.tail {
		pred = pred.succ
	}
	last := pred.succ
	pred.succ = l.tail
	last.succ = nil
	l.size--
	l.trace.erased(1, l.size)
}

// PopFront removes the first element in O(1). The node is unlinked and
// released; the before-begin sentinel stays put, so cursors obtained from
// BeforeBegin before the call remain valid. No-op on an empty list.
func (l *List[T]) PopFront() {
	if l.Empty() {
		return
	}
	first := l.head.succ
	l.head.succ = first.succ
	first.succ = nil
	l.size--
	l.trace.erased(1, l.size)
}

// RemoveAt removes the node pos references and returns its value with
// ok=true. When pos matches no real node of this list (a sentinel, End, a
// foreign cursor) it returns the zero value and ok=false. O(n).
func (l *List[T]) RemoveAt(pos Cursor[T]) (val T, ok bool) {
	for pred := l.head; pred.succ != l.tail; pred = pred.succ {
		target := pred.succ
		if target != pos.n {
			continue
		}
		val = target.val
		pred.succ = target.succ
		target.succ = nil
		l.size--
		l.trace.erased(1, l.size)
		return val, true
	}
	return val, false
}

// EraseAfter removes the node at pos and every node after it, down to (not
// including) the end sentinel. A pos matching no real node is a no-op.
func (l *List[T]) EraseAfter(pos Cursor[T]) {
	l.EraseRange(pos, l.CEnd())
}

// EraseRange removes the nodes in [from, to): from's node and every node up
// to but excluding to's. to must be reachable from from (End always is);
// otherwise, or when from matches no real node, the call is a no-op.
func (l *List[T]) EraseRange(from, to Cursor[T]) {
	if l.Empty() {
		return
	}
	pred := l.head
	for ; pred.succ != l.tail; pred = pred.succ {
		if pred.succ == from.n {
			break
		}
	}
	if pred.succ == l.tail {
		return
	}
	if to.n != l.tail && !reachable(from.n, to.n, l.tail) {
		return
	}
	removed := 0
	cur := from.n
	for cur != to.n && cur != l.tail {
		next := cur.succ
		cur.succ = nil
		cur = next
		removed++
	}
	pred.succ = cur
	l.size -= removed
	if removed > 0 {
		l.trace.erased(removed, l.size)
	}
}

// reachable reports whether to lies at or after from, stopping at the
// sentinel.
func reachable[T cmp.Ordered](from, to, tail *node[T]) bool {
	for n := from; n != tail; n = n.succ {
		if n == to {
			return true
		}
	}
	return false
}

// Unique collapses every maximal run of equal adjacent elements to a single
// occurrence. It expects a sorted list; with validation on, a list sorted in
// neither direction is first sorted ascending. A descending-sorted list
// keeps its order. Idempotent. O(n).
func (l *List[T]) Unique() {
	if l.size < 2 {
		return
	}
	if l.validate && !l.Sorted(Ascending) && !l.Sorted(Descending) {
		l.Sort(Ascending)
	}
	removed := 0
	for n := l.head.succ; n != l.tail && n.succ != l.tail; {
		if n.val == n.succ.val {
			dup := n.succ
			n.succ = dup.succ
			dup.succ = nil
			removed++
		} else {
			n = n.succ
		}
	}
	if removed > 0 {
		l.size -= removed
		l.trace.erased(removed, l.size)
	}
}
