package cods

import "github.com/cockroachdb/errors"

var (
	// ErrOutOfMemory signals that a container could not allocate or grow its storage.
	ErrOutOfMemory = errors.New("cods: out of memory")
	// ErrInvalidArgument signals a violated construction precondition.
	ErrInvalidArgument = errors.New("cods: invalid argument")
	// ErrIndexOutOfRange signals an index outside the range valid for the operation.
	ErrIndexOutOfRange = errors.New("cods: index out of range")
	// ErrDuplicateKey signals insertion of a value equivalent to a present one.
	ErrDuplicateKey = errors.New("cods: duplicate key")
	// ErrNotFound signals that a search found no match.
	ErrNotFound = errors.New("cods: not found")
)

// IndexError wraps ErrIndexOutOfRange with the offending index and the
// container size.
func IndexError(index, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, size)
}
