package binary

import (
	"github.com/pkg/errors"
)

var (
	// ErrOutOfBounds is returned when a read or write would pass the end of
	// the underlying buffer.
	ErrOutOfBounds = errors.New("binary: out of bounds")

	// ErrTruncatedBuffer is returned when a declared element count cannot be
	// satisfied by the bytes that remain.
	ErrTruncatedBuffer = errors.New("binary: truncated buffer")

	// ErrSchemaMismatch is returned when the bytes don't describe the expected
	// record, such as a wrong discriminator or an invalid option tag.
	ErrSchemaMismatch = errors.New("binary: schema mismatch")

	// ErrArrayLength is returned when a fixed array is encoded with the wrong
	// number of elements.
	ErrArrayLength = errors.New("binary: array length mismatch")
)
