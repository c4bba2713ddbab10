package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// MB holds an RFC 1035 §3.3.3 mailbox domain name record (experimental).
type MB struct {
	MADName string
}

func (r *MB) Type() types.RRType { return types.MB }

func (r *MB) Encode(w *wire.Writer, c *name.Compressor) error {
	return name.Encode(w, c, r.MADName)
}

func decodeMB(r *wire.Reader) (*MB, error) {
	n, err := name.Decode(r)
	if err != nil {
		return nil, err
	}
	return &MB{MADName: n}, nil
}
