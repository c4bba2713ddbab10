package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// MD holds an RFC 1035 §3.3.4 mail destination record. Obsoleted by MX but
// still a distinct wire type this codec must round-trip faithfully.
type MD struct {
	MADName string
}

func (r *MD) Type() types.RRType { return types.MD }

func (r *MD) Encode(w *wire.Writer, c *name.Compressor) error {
	return name.Encode(w, c, r.MADName)
}

func decodeMD(r *wire.Reader) (*MD, error) {
	n, err := name.Decode(r)
	if err != nil {
		return nil, err
	}
	return &MD{MADName: n}, nil
}
