package rrdata

import (
	"net"

	"github.com/kdns/dnswire/internal/dns/wire"
)

// isIPv4 reports whether ip is a 4-byte-representable address.
// Grounded on the reference repo's common/rrdata isIPv4/isIPv6 helpers.
func isIPv4(ip net.IP) bool {
	return ip != nil && ip.To4() != nil
}

// isIPv6 reports whether ip is a genuine 16-byte address, excluding
// addresses that also have a 4-byte form.
func isIPv6(ip net.IP) bool {
	return ip != nil && ip.To16() != nil && ip.To4() == nil
}

// readCharString reads a single RFC 1035 §3.3 <character-string>: a
// length byte followed by that many octets.
func readCharString(r *wire.Reader) (string, error) {
	length, err := r.ReadUint8()
	if err != nil {
		return "", err
	}
	b, err := r.ReadBytes(int(length))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// writeCharString writes s as an RFC 1035 §3.3 <character-string>.
func writeCharString(w *wire.Writer, s string) error {
	if len(s) > 255 {
		return ErrCharStringTooLong
	}
	w.WriteUint8(uint8(len(s)))
	w.WriteBytes([]byte(s))
	return nil
}
