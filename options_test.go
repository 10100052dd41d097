package forwardlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithValidation(t *testing.T) {
	checked := New[int]()
	require.True(t, checked.validate, "checks are on by default")

	relaxed := New(WithValidation[int](false))
	require.False(t, relaxed.validate)

	reenabled := New(WithValidation[int](false), WithValidation[int](true))
	require.True(t, reenabled.validate, "the last option wins")
}

func TestValidationObservableDifference(t *testing.T) {
	// Unique's sort-first guard is the one behavioral difference between the
	// two modes that is safe to observe.
	checked := FromSlice([]int{2, 1, 2})
	checked.Unique()
	require.Equal(t, []int{1, 2}, checked.ToSlice())

	relaxed := FromSlice([]int{2, 1, 2}, WithValidation[int](false))
	relaxed.Unique()
	require.Equal(t, []int{2, 1, 2}, relaxed.ToSlice())
}

func TestCloneCarriesValidationMode(t *testing.T) {
	relaxed := FromSlice([]int{2, 1, 2}, WithValidation[int](false))
	cp := relaxed.Clone()
	cp.Unique()
	require.Equal(t, []int{2, 1, 2}, cp.ToSlice())
}

func TestNilOptionIgnored(t *testing.T) {
	l := New[int](nil, WithValidation[int](false))
	require.False(t, l.validate)
	l.PushBack(1)
	require.Equal(t, []int{1}, l.ToSlice())
}
