package forwardlist

// Find returns the cursor of the first element equal to v, scanning from the
// front; CEnd when absent. O(n).
func (l *List[T]) Find(v T) Cursor[T] {
	for n := l.head.succ; n != l.tail; n = n.succ {
		if n.val == v {
			return Cursor[T]{n: n, l: l}
		}
	}
	return l.CEnd()
}

// Search assumes the list is sorted in the given order and returns the
// insertion predecessor for v: the last position whose value is not after v
// under that order. When even the first element is after v the result is
// CBeforeBegin. Equal values count as not-after in both directions, so the
// result lands past a whole run of equals. O(n).
func (l *List[T]) Search(v T, order Order) Cursor[T] {
	pred := l.head
	for pred.succ != l.tail && !after(order, pred.succ.val, v) {
		pred = pred.succ
	}
	return Cursor[T]{n: pred, l: l}
}

// Sorted reports whether adjacent elements never violate the given order.
// Equal neighbours are not a violation. O(n).
func (l *List[T]) Sorted(order Order) bool {
	if l.size < 2 {
		return true
	}
	for n := l.head.succ; n.succ != l.tail; n = n.succ {
		if after(order, n.val, n.succ.val) {
			return false
		}
	}
	return true
}

// Contains reports whether v occurs in the list. O(n).
func (l *List[T]) Contains(v T) bool {
	for n := l.head.succ; n != l.tail; n = n.succ {
		if n.val == v {
			return true
		}
	}
	return false
}

// Count returns the number of occurrences of v. O(n).
func (l *List[T]) Count(v T) int {
	count := 0
	for n := l.head.succ; n != l.tail; n = n.succ {
		if n.val == v {
			count++
		}
	}
	return count
}
