package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// MF holds an RFC 1035 §3.3.5 mail forwarder record. Obsoleted by MX but
// still a distinct wire type this codec must round-trip faithfully.
type MF struct {
	MADName string
}

func (r *MF) Type() types.RRType { return types.MF }

func (r *MF) Encode(w *wire.Writer, c *name.Compressor) error {
	return name.Encode(w, c, r.MADName)
}

func decodeMF(r *wire.Reader) (*MF, error) {
	n, err := name.Decode(r)
	if err != nil {
		return nil, err
	}
	return &MF{MADName: n}, nil
}
