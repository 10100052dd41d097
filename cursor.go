package forwardlist

import "cmp"

// Cursor is a read-only handle on one chain position. Cursors are transient
// views: they do not own the node they reference and dangle once it is
// erased; using a dangling cursor is a precondition violation, not a
// recoverable state. Two cursors compare equal (==) when they reference the
// same node of the same list, regardless of value.
type Cursor[T cmp.Ordered] struct {
	n *node[T]
	l *List[T]
}

// MutCursor is the read-write capability level over the same position
// representation: every Cursor operation plus Set.
type MutCursor[T cmp.Ordered] struct {
	Cursor[T]
}

// BeforeBegin returns the cursor on the before-begin sentinel, the anchor
// position for front insertion. It must not be dereferenced.
func (l *List[T]) BeforeBegin() MutCursor[T] {
	return MutCursor[T]{Cursor[T]{n: l.head, l: l}}
}

// Begin returns the cursor on the first element; on an empty list it equals
// End.
func (l *List[T]) Begin() MutCursor[T] {
	return MutCursor[T]{Cursor[T]{n: l.head.succ, l: l}}
}

// Front is Begin under its container name.
func (l *List[T]) Front() MutCursor[T] {
	return l.Begin()
}

// Back returns the cursor on the last element, found by linear scan; no
// predecessor-of-tail pointer is kept. On an empty list it degenerates to
// BeforeBegin. O(n).
func (l *List[T]) Back() MutCursor[T] {
	n := l.head
	for n.succ != l.tail {
		n = n.succ
	}
	return MutCursor[T]{Cursor[T]{n: n, l: l}}
}

// End returns the past-the-end cursor. It must not be dereferenced.
func (l *List[T]) End() MutCursor[T] {
	return MutCursor[T]{Cursor[T]{n: l.tail, l: l}}
}

// CBeforeBegin, CBegin and CEnd are the read-only counterparts of
// BeforeBegin, Begin and End.

func (l *List[T]) CBeforeBegin() Cursor[T] { return Cursor[T]{n: l.head, l: l} }

func (l *List[T]) CBegin() Cursor[T] { return Cursor[T]{n: l.head.succ, l: l} }

func (l *List[T]) CEnd() Cursor[T] { return Cursor[T]{n: l.tail, l: l} }

// Value returns the referenced element. Dereferencing a sentinel panics with
// ErrUnderflow or ErrOverflow; a zero cursor panics with ErrNilCursor.
func (c Cursor[T]) Value() T {
	c.deref("Value")
	return c.n.val
}

// Next returns the cursor one position forward. Advancing from the end
// sentinel is an overflow violation; stepping from before-begin onto the
// first element is allowed.
func (c Cursor[T]) Next() Cursor[T] {
	c.step("Next")
	return Cursor[T]{n: c.n.succ, l: c.l}
}

// Advance returns the cursor n positions forward, checking bounds at every
// step. Landing on the end sentinel is allowed; stepping past it is not.
// Negative n is a range violation.
func (c Cursor[T]) Advance(n int) Cursor[T] {
	if n < 0 {
		if c.l == nil || c.l.validate {
			panic(violation("Advance", ErrRange))
		}
		return c
	}
	for ; n > 0; n-- {
		c = c.Next()
	}
	return c
}

// Next returns the cursor one position forward, keeping the read-write
// capability.
func (c MutCursor[T]) Next() MutCursor[T] {
	return MutCursor[T]{c.Cursor.Next()}
}

// Advance returns the cursor n positions forward, keeping the read-write
// capability.
func (c MutCursor[T]) Advance(n int) MutCursor[T] {
	return MutCursor[T]{c.Cursor.Advance(n)}
}

// Set overwrites the referenced element. Sentinels cannot be written.
func (c MutCursor[T]) Set(v T) {
	c.deref("Set")
	c.n.val = v
}

// deref checks that the cursor may be dereferenced. With validation off only
// the orphan-cursor check remains; everything else is the caller's problem.
func (c Cursor[T]) deref(op string) {
	if c.l == nil {
		panic(violation(op, ErrNilCursor))
	}
	if !c.l.validate {
		return
	}
	switch {
	case c.n == nil:
		panic(violation(op, ErrNilCursor))
	case c.n == c.l.head:
		panic(violation(op, ErrUnderflow))
	case c.n == c.l.tail:
		panic(violation(op, ErrOverflow))
	}
}

// step checks that the cursor may advance. The before-begin sentinel is a
// legal starting point.
func (c Cursor[T]) step(op string) {
	if c.l == nil {
		panic(violation(op, ErrNilCursor))
	}
	if !c.l.validate {
		return
	}
	switch {
	case c.n == nil:
		panic(violation(op, ErrNilCursor))
	case c.n == c.l.tail:
		panic(violation(op, ErrOverflow))
	}
}
