package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// PTR holds an RFC 1035 §3.3.12 domain-name-pointer record.
type PTR struct {
	PTRDName string
}

func (r *PTR) Type() types.RRType { return types.PTR }

func (r *PTR) Encode(w *wire.Writer, c *name.Compressor) error {
	return name.Encode(w, c, r.PTRDName)
}

func decodePTR(r *wire.Reader) (*PTR, error) {
	n, err := name.Decode(r)
	if err != nil {
		return nil, err
	}
	return &PTR{PTRDName: n}, nil
}
