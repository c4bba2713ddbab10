package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// MINFO holds an RFC 1035 §3.3.7 mailbox/mail-list information record
// (experimental).
type MINFO struct {
	RMailBX string
	EMailBX string
}

func (r *MINFO) Type() types.RRType { return types.MINFO }

func (r *MINFO) Encode(w *wire.Writer, c *name.Compressor) error {
	if err := name.Encode(w, c, r.RMailBX); err != nil {
		return err
	}
	return name.Encode(w, c, r.EMailBX)
}

func decodeMINFO(r *wire.Reader) (*MINFO, error) {
	rmailbx, err := name.Decode(r)
	if err != nil {
		return nil, err
	}
	emailbx, err := name.Decode(r)
	if err != nil {
		return nil, err
	}
	return &MINFO{RMailBX: rmailbx, EMailBX: emailbx}, nil
}
