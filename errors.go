package ostree

import "errors"

var (
	// ErrIndexOutOfBounds signals an order-statistic index outside [0, Len()).
	ErrIndexOutOfBounds = errors.New("ostree: index out of bounds")
	// ErrIllegalArguments signals input violating a documented precondition,
	// e.g. an unsorted key sequence handed to FromSorted.
	ErrIllegalArguments = errors.New("ostree: illegal arguments")
	// ErrCorruptTree is reported by Check for a violated tree invariant.
	ErrCorruptTree = errors.New("ostree: corrupt tree")
)
