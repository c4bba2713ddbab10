package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// MX holds an RFC 1035 §3.3.9 mail-exchange record.
type MX struct {
	Preference uint16
	Exchange   string
}

func (r *MX) Type() types.RRType { return types.MX }

func (r *MX) Encode(w *wire.Writer, c *name.Compressor) error {
	w.WriteUint16(r.Preference)
	return name.Encode(w, c, r.Exchange)
}

func decodeMX(r *wire.Reader) (*MX, error) {
	pref, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	exchange, err := name.Decode(r)
	if err != nil {
		return nil, err
	}
	return &MX{Preference: pref, Exchange: exchange}, nil
}
