package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// CNAME holds an RFC 1035 §3.3.1 canonical name record.
type CNAME struct {
	CName string
}

func (r *CNAME) Type() types.RRType { return types.CNAME }

func (r *CNAME) Encode(w *wire.Writer, c *name.Compressor) error {
	return name.Encode(w, c, r.CName)
}

func decodeCNAME(r *wire.Reader) (*CNAME, error) {
	n, err := name.Decode(r)
	if err != nil {
		return nil, err
	}
	return &CNAME{CName: n}, nil
}
