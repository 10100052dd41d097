package forwardlist

import "golang.org/x/xerrors"

// Violation errors. Bounds and nil checks panic with one of these wrapped in
// operation context; match the recovered value with errors.Is. FromRange
// returns ErrRange as an ordinary error because the misuse is decidable
// before any node exists.
//
// There is no type-mismatch error: with the element type fixed by the
// List's type parameter that misuse does not compile.
var (
	ErrUnderflow = xerrors.New("forwardlist: underflow: before-begin sentinel has no value")
	ErrOverflow  = xerrors.New("forwardlist: overflow: access past the end sentinel")
	ErrNilCursor = xerrors.New("forwardlist: nil cursor")
	ErrRange     = xerrors.New("forwardlist: range error: end precedes begin")
)

func violation(op string, err error) error {
	return xerrors.Errorf("%s: %w", op, err)
}
