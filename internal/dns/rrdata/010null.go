package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// NULL holds an RFC 1035 §3.3.10 NULL record: up to 65535 octets of
// anything at all (experimental).
type NULL struct {
	Data []byte
}

func (r *NULL) Type() types.RRType { return types.NULLR }

func (r *NULL) Encode(w *wire.Writer, _ *name.Compressor) error {
	w.WriteBytes(r.Data)
	return nil
}

func decodeNULL(r *wire.Reader, rdlength int) (*NULL, error) {
	b, err := r.ReadBytes(rdlength)
	if err != nil {
		return nil, err
	}
	return &NULL{Data: append([]byte(nil), b...)}, nil
}
