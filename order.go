package forwardlist

import "cmp"

// Order selects the direction ordering operations work in.
type Order int

const (
	Ascending Order = iota
	Descending
)

func (o Order) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

// less reports whether a must come strictly before b under o.
func less[T cmp.Ordered](o Order, a, b T) bool {
	if o == Descending {
		return a > b
	}
	return a < b
}

// after reports whether a comes strictly after v under o. Equal values are
// never after one another in either direction.
func after[T cmp.Ordered](o Order, a, v T) bool {
	return less(o, v, a)
}
