package forwardlist

// Trace holds optional callbacks fired after mutating operations complete.
// Nil callbacks are skipped, so the zero Trace costs nothing. OnInsert,
// OnErase, OnMerge and OnLink receive the number of elements the operation
// added or removed together with the resulting length; OnSort fires after
// every Sort call. Operations that change nothing fire nothing.
type Trace struct {
	OnInsert func(n, size int)
	OnErase  func(n, size int)
	OnSort   func(order Order, size int)
	OnMerge  func(n, size int)
	OnLink   func(n, size int)
}

// Compose returns a trace that fires t's callbacks first, then x's.
func (t Trace) Compose(x Trace) Trace {
	return Trace{
		OnInsert: composeSizeHook(t.OnInsert, x.OnInsert),
		OnErase:  composeSizeHook(t.OnErase, x.OnErase),
		OnSort:   composeSortHook(t.OnSort, x.OnSort),
		OnMerge:  composeSizeHook(t.OnMerge, x.OnMerge),
		OnLink:   composeSizeHook(t.OnLink, x.OnLink),
	}
}

func composeSizeHook(a, b func(n, size int)) func(n, size int) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return func(n, size int) {
			a(n, size)
			b(n, size)
		}
	}
}

func composeSortHook(a, b func(order Order, size int)) func(order Order, size int) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return func(order Order, size int) {
			a(order, size)
			b(order, size)
		}
	}
}

func (t Trace) inserted(n, size int) {
	if t.OnInsert != nil {
		t.OnInsert(n, size)
	}
}

func (t Trace) erased(n, size int) {
	if t.OnErase != nil {
		t.OnErase(n, size)
	}
}

func (t Trace) sortDone(order Order, size int) {
	if t.OnSort != nil {
		t.OnSort(order, size)
	}
}

func (t Trace) merged(n, size int) {
	if t.OnMerge != nil {
		t.OnMerge(n, size)
	}
}

func (t Trace) linked(n, size int) {
	if t.OnLink != nil {
		t.OnLink(n, size)
	}
}
