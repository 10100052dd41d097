// Package forwardlist implements a generic singly-linked sequence container
// with constant-time front insertion, forward-only cursors and in-place,
// splice-based sorting and merging.
//
// A list owns a chain of nodes bounded by two sentinels: a before-begin
// sentinel anchoring front insertion and a past-the-end sentinel marking the
// one-past-last position. Sentinels never carry a meaningful value and must
// never be dereferenced. Every node is exclusively owned by its predecessor;
// the sorting and merging algorithms reorder the chain by relinking nodes
// rather than copying values.
//
// Lists are not safe for concurrent use. Callers that share a list across
// goroutines must serialize access externally.
package forwardlist

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"golang.org/x/xerrors"
)

// node is one link of the chain. A node is exclusively owned by its
// predecessor; the first real node is owned by the head sentinel.
type node[T cmp.Ordered] struct {
	val  T
	succ *node[T]
}

// List is a singly-linked sequence of values. The zero value is not usable;
// construct with New, FromSlice, FromRange, FromSeq or Clone.
type List[T cmp.Ordered] struct {
	head *node[T] // before-begin sentinel, never carries a value
	tail *node[T] // past-the-end sentinel, succ always nil
	size int

	validate bool
	trace    Trace
}

// New returns an empty list. Precondition checks are enabled unless
// WithValidation(false) is given.
func New[T cmp.Ordered](opts ...Option[T]) *List[T] {
	tail := &node[T]{}
	l := &List[T]{
		head:     &node[T]{succ: tail},
		tail:     tail,
		validate: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// FromSlice returns a list holding the elements of s in order.
func FromSlice[T cmp.Ordered](s []T, opts ...Option[T]) *List[T] {
	l := New(opts...)
	for _, v := range s {
		l.append(v)
	}
	return l
}

// FromRange returns a list holding s[begin:end] in order. It returns an
// error wrapping ErrRange when end precedes begin or either bound falls
// outside s.
func FromRange[T cmp.Ordered](s []T, begin, end int, opts ...Option[T]) (*List[T], error) {
	switch {
	case end < begin:
		return nil, xerrors.Errorf("FromRange [%d, %d): %w", begin, end, ErrRange)
	case begin < 0 || end > len(s):
		return nil, xerrors.Errorf("FromRange [%d, %d) outside [0, %d): %w", begin, end, len(s), ErrRange)
	}
	return FromSlice(s[begin:end], opts...), nil
}

// FromSeq returns a list holding the values produced by seq, in production
// order. The sequence length is not decidable up front, so no range check
// applies.
func FromSeq[T cmp.Ordered](seq iter.Seq[T], opts ...Option[T]) *List[T] {
	l := New(opts...)
	for v := range seq {
		l.append(v)
	}
	return l
}

// Clone returns a deep copy of l carrying the same validation mode and
// trace. Building the copy fires no trace callbacks.
func (l *List[T]) Clone() *List[T] {
	c := l.cloneChain()
	c.validate = l.validate
	c.trace = l.trace
	return c
}

// cloneChain returns a bare deep copy of the chain with default settings.
func (l *List[T]) cloneChain() *List[T] {
	c := New[T]()
	for n := l.head.succ; n != l.tail; n = n.succ {
		c.append(n.val)
	}
	return c
}

// Len returns the number of elements. O(1).
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Clear removes every element. Cursors into the removed nodes dangle
// afterwards; sentinel cursors stay valid.
func (l *List[T]) Clear() {
	removed := l.size
	for cur := l.head.succ; cur != l.tail; {
		next := cur.succ
		cur.succ = nil
		cur = next
	}
	l.head.succ = l.tail
	l.size = 0
	if removed > 0 {
		l.trace.erased(removed, 0)
	}
}

// All returns an iterator over the elements in list order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.succ; n != l.tail; n = n.succ {
			if !yield(n.val) {
				return
			}
		}
	}
}

// ToSlice returns the elements in list order.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.head.succ; n != l.tail; n = n.succ {
		out = append(out, n.val)
	}
	return out
}

// String renders the elements space-separated, e.g. "[9 -12 7]".
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head.succ; n != l.tail; n = n.succ {
		if n != l.head.succ {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, n.val)
	}
	b.WriteByte(']')
	return b.String()
}
