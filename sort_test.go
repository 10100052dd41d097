package forwardlist

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// sortedCopy is the expected outcome of Sort: the same multiset, ordered.
func sortedCopy(in []int, order Order) []int {
	out := slices.Clone(in)
	slices.Sort(out)
	if order == Descending {
		slices.Reverse(out)
	}
	return out
}

func TestSort(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   []int
	}{
		{name: "empty", in: nil},
		{name: "single", in: []int{5}},
		{name: "pair in order", in: []int{1, 2}},
		{name: "pair swapped", in: []int{2, 1}},
		{name: "already sorted", in: []int{1, 2, 3, 4, 5}},
		{name: "reverse sorted", in: []int{5, 4, 3, 2, 1}},
		{name: "duplicates", in: []int{3, 1, 3, 2, 1, 3}},
		{name: "all equal", in: []int{7, 7, 7, 7}},
		{name: "sample", in: []int{9, -12, 1024, 7}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			for _, order := range []Order{Ascending, Descending} {
				l := FromSlice(tt.in)
				l.Sort(order)
				require.True(t, l.Sorted(order))
				require.Equal(t, sortedCopy(tt.in, order), l.ToSlice(), "sort must permute, not filter")
				require.Equal(t, len(tt.in), l.Len())
			}
		})
	}
}

func TestSortRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(0x5eed, 0xbeef))
	for size := 0; size <= 64; size++ {
		in := make([]int, size)
		for i := range in {
			in[i] = rng.IntN(10) // small domain forces duplicate runs
		}
		for _, order := range []Order{Ascending, Descending} {
			l := FromSlice(in)
			l.Sort(order)
			require.True(t, l.Sorted(order), "size %d %v: %v", size, order, l.ToSlice())
			require.Equal(t, sortedCopy(in, order), l.ToSlice(), "size %d %v", size, order)
		}
	}
}

func TestSortLeavesSentinelsAlone(t *testing.T) {
	l := FromSlice([]int{4, 2, 8, 6})
	end := l.CEnd()
	bb := l.CBeforeBegin()

	l.Sort(Ascending)

	require.True(t, end == l.CEnd(), "the tail sentinel is untouched by sort")
	require.True(t, bb == l.CBeforeBegin())

	// the chain stays extensible after sorting
	l.PushBack(100)
	l.PushFront(1)
	require.Equal(t, []int{1, 2, 4, 6, 8, 100}, l.ToSlice())
}

func TestSortStrings(t *testing.T) {
	l := FromSlice([]string{"pear", "apple", "fig", "apple"})
	l.Sort(Ascending)
	require.Equal(t, []string{"apple", "apple", "fig", "pear"}, l.ToSlice())
}
