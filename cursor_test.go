package forwardlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorTraversal(t *testing.T) {
	l := FromSlice([]int{10, 20, 30})

	it := l.CBegin()
	var got []int
	for it != l.CEnd() {
		got = append(got, it.Value())
		it = it.Next()
	}
	require.Equal(t, []int{10, 20, 30}, got)

	require.Equal(t, 30, l.CBegin().Advance(2).Value())
	require.True(t, l.CBegin().Advance(3) == l.CEnd())
	require.True(t, l.CBegin().Advance(0) == l.CBegin())
	require.Equal(t, 10, l.CBeforeBegin().Next().Value())
}

func TestCursorEquality(t *testing.T) {
	l := FromSlice([]int{1, 1}) // equal values, distinct nodes

	require.True(t, l.Begin().Cursor == l.CBegin())
	require.True(t, l.Front() == l.Begin())
	require.True(t, l.CBegin() != l.CBegin().Next(), "equality is node identity, not value")

	other := FromSlice([]int{1, 1})
	require.True(t, l.CBegin() != other.CBegin(), "cursors of distinct lists never match")
}

func TestBackAndEnd(t *testing.T) {
	l := FromSlice([]int{5, 6, 7})
	require.Equal(t, 7, l.Back().Value())
	require.True(t, l.Back().Cursor.Next() == l.End().Cursor)

	empty := New[int]()
	require.True(t, empty.Back() == empty.BeforeBegin(), "Back degenerates to BeforeBegin on an empty list")
	require.True(t, empty.Begin() == empty.End())
}

func TestMutCursorSet(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	l.Begin().Next().Set(20)
	require.Equal(t, []int{1, 20, 3}, l.ToSlice())

	requireViolation(t, ErrOverflow, func() { l.End().Set(9) })
	requireViolation(t, ErrUnderflow, func() { l.BeforeBegin().Set(9) })
}

func TestCursorViolations(t *testing.T) {
	l := FromSlice([]int{1})

	requireViolation(t, ErrUnderflow, func() { l.CBeforeBegin().Value() })
	requireViolation(t, ErrOverflow, func() { l.CEnd().Value() })
	requireViolation(t, ErrOverflow, func() { l.CEnd().Next() })
	requireViolation(t, ErrOverflow, func() { l.CBegin().Advance(2) })
	requireViolation(t, ErrRange, func() { l.CBegin().Advance(-1) })
	requireViolation(t, ErrNilCursor, func() {
		var zero Cursor[int]
		zero.Value()
	})
	requireViolation(t, ErrNilCursor, func() {
		var zero Cursor[int]
		zero.Next()
	})
	requireViolation(t, ErrNilCursor, func() {
		Cursor[int]{l: l}.Value()
	})
}

func TestValidationDisabled(t *testing.T) {
	l := FromSlice([]int{3, 1, 2}, WithValidation[int](false))

	// the happy paths behave identically with checks elided
	require.Equal(t, 1, l.CBegin().Next().Value())
	require.True(t, l.CBegin().Advance(3) == l.CEnd())
	l.Begin().Set(30)
	require.Equal(t, []int{30, 1, 2}, l.ToSlice())

	l.Sort(Ascending)
	require.Equal(t, []int{1, 2, 30}, l.ToSlice())
}
