package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// SOA holds an RFC 1035 §3.3.13 start-of-authority record.
type SOA struct {
	MName   string
	RName   string
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (r *SOA) Type() types.RRType { return types.SOA }

func (r *SOA) Encode(w *wire.Writer, c *name.Compressor) error {
	if err := name.Encode(w, c, r.MName); err != nil {
		return err
	}
	if err := name.Encode(w, c, r.RName); err != nil {
		return err
	}
	w.WriteUint32(r.Serial)
	w.WriteUint32(r.Refresh)
	w.WriteUint32(r.Retry)
	w.WriteUint32(r.Expire)
	w.WriteUint32(r.Minimum)
	return nil
}

func decodeSOA(r *wire.Reader) (*SOA, error) {
	mname, err := name.Decode(r)
	if err != nil {
		return nil, err
	}
	rname, err := name.Decode(r)
	if err != nil {
		return nil, err
	}
	soa := &SOA{MName: mname, RName: rname}
	if soa.Serial, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if soa.Refresh, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if soa.Retry, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if soa.Expire, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if soa.Minimum, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	return soa, nil
}
