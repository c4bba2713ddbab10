package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// MR holds an RFC 1035 §3.3.8 mail rename domain name record (experimental).
type MR struct {
	NewName string
}

func (r *MR) Type() types.RRType { return types.MR }

func (r *MR) Encode(w *wire.Writer, c *name.Compressor) error {
	return name.Encode(w, c, r.NewName)
}

func decodeMR(r *wire.Reader) (*MR, error) {
	n, err := name.Decode(r)
	if err != nil {
		return nil, err
	}
	return &MR{NewName: n}, nil
}
