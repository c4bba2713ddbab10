package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// MG holds an RFC 1035 §3.3.6 mail group member record (experimental).
type MG struct {
	MGMName string
}

func (r *MG) Type() types.RRType { return types.MG }

func (r *MG) Encode(w *wire.Writer, c *name.Compressor) error {
	return name.Encode(w, c, r.MGMName)
}

func decodeMG(r *wire.Reader) (*MG, error) {
	n, err := name.Decode(r)
	if err != nil {
		return nil, err
	}
	return &MG{MGMName: n}, nil
}
