package wire

import "errors"

var (
	// ErrTruncatedInput is returned when a read runs past the end of the buffer.
	ErrTruncatedInput = errors.New("dns wire: truncated input")

	// ErrInvalidOffset is returned when Seek is asked to move outside the buffer.
	ErrInvalidOffset = errors.New("dns wire: invalid offset")
)
