package rrdata

import (
	"net"

	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// A holds an RFC 1035 §3.4.1 address record: a 32-bit IPv4 address.
type A struct {
	Address net.IP
}

func (a *A) Type() types.RRType { return types.A }

func (a *A) Encode(w *wire.Writer, _ *name.Compressor) error {
	if !isIPv4(a.Address) {
		return ErrInvalidIPv4
	}
	w.WriteBytes(a.Address.To4())
	return nil
}

func decodeA(r *wire.Reader, rdlength int) (*A, error) {
	if rdlength != 4 {
		return nil, ErrMalformedRData
	}
	b, err := r.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	return &A{Address: net.IP(append([]byte(nil), b...))}, nil
}
