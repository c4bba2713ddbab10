package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// HINFO holds an RFC 1035 §3.3.2 host-information record.
type HINFO struct {
	CPU string
	OS  string
}

func (r *HINFO) Type() types.RRType { return types.HINFO }

func (r *HINFO) Encode(w *wire.Writer, _ *name.Compressor) error {
	if err := writeCharString(w, r.CPU); err != nil {
		return err
	}
	return writeCharString(w, r.OS)
}

func decodeHINFO(r *wire.Reader) (*HINFO, error) {
	cpu, err := readCharString(r)
	if err != nil {
		return nil, err
	}
	os, err := readCharString(r)
	if err != nil {
		return nil, err
	}
	return &HINFO{CPU: cpu, OS: os}, nil
}
