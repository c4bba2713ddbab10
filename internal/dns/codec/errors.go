package codec

import "errors"

var (
	// ErrShortTCPPrefix reports a buffer too small to hold the 2-byte TCP
	// length prefix.
	ErrShortTCPPrefix = errors.New("codec: buffer shorter than the TCP length prefix")
	// ErrTCPLengthMismatch reports a TCP length prefix that exceeds the
	// number of bytes actually available after it.
	ErrTCPLengthMismatch = errors.New("codec: declared TCP message length exceeds available bytes")
)
