package rrdata

import (
	"net"

	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// AAAA holds an RFC 1886/3596 IPv6 address record.
type AAAA struct {
	Address net.IP
}

func (r *AAAA) Type() types.RRType { return types.AAAA }

func (r *AAAA) Encode(w *wire.Writer, _ *name.Compressor) error {
	if !isIPv6(r.Address) {
		return ErrInvalidIPv6
	}
	w.WriteBytes(r.Address.To16())
	return nil
}

func decodeAAAA(r *wire.Reader, rdlength int) (*AAAA, error) {
	if rdlength != 16 {
		return nil, ErrMalformedRData
	}
	b, err := r.ReadBytes(16)
	if err != nil {
		return nil, err
	}
	return &AAAA{Address: net.IP(append([]byte(nil), b...))}, nil
}
