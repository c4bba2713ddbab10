package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// NS holds an RFC 1035 §3.3.11 authoritative name server record.
type NS struct {
	NSDName string
}

func (r *NS) Type() types.RRType { return types.NS }

func (r *NS) Encode(w *wire.Writer, c *name.Compressor) error {
	return name.Encode(w, c, r.NSDName)
}

func decodeNS(r *wire.Reader) (*NS, error) {
	n, err := name.Decode(r)
	if err != nil {
		return nil, err
	}
	return &NS{NSDName: n}, nil
}
