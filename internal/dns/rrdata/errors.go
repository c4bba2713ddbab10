package rrdata

import "errors"

// RDATA errors. ErrMalformedRData and ErrRDLengthMismatch come from
// decoding (ErrMalformedRData also from CAA encoding); ErrInvalidIPv4,
// ErrInvalidIPv6 and ErrCharStringTooLong come from encoding. Names inside
// RDATA surface their own errors from the name package.
var (
	ErrMalformedRData    = errors.New("rrdata: malformed record data")
	ErrRDLengthMismatch  = errors.New("rrdata: consumed bytes do not match RDLENGTH")
	ErrInvalidIPv4       = errors.New("rrdata: address is not a valid IPv4 address")
	ErrInvalidIPv6       = errors.New("rrdata: address is not a valid IPv6 address")
	ErrCharStringTooLong = errors.New("rrdata: character-string exceeds 255 octets")
)
