package forwardlist

import "cmp"

// Option configures a list at construction time. Clone carries the resulting
// settings over to the copy.
type Option[T cmp.Ordered] func(*List[T])

// WithValidation switches precondition checks on or off for the instance.
// Checks are on by default. With them off the hot paths skip every bounds
// and nil check and violating a precondition is undefined behavior.
func WithValidation[T cmp.Ordered](enabled bool) Option[T] {
	return func(l *List[T]) {
		l.validate = enabled
	}
}

// WithTrace attaches t to the list, composing with any trace attached by an
// earlier option.
func WithTrace[T cmp.Ordered](t Trace) Option[T] {
	return func(l *List[T]) {
		l.trace = l.trace.Compose(t)
	}
}
