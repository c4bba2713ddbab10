package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// SRV holds an RFC 2782 service-location record.
//
// RFC 2782 is silent on whether Target may use name compression; most
// resolvers accept it, so it is compressed by default here like any other
// record name. DisableTargetCompression lets a caller opt into the strict
// reading (some older SRV consumers mishandle a compressed target) on a
// per-record basis; the codec package sets it from CodecOptions.
type SRV struct {
	Priority                 uint16
	Weight                   uint16
	Port                     uint16
	Target                   string
	DisableTargetCompression bool
}

func (r *SRV) Type() types.RRType { return types.SRV }

func (r *SRV) Encode(w *wire.Writer, c *name.Compressor) error {
	w.WriteUint16(r.Priority)
	w.WriteUint16(r.Weight)
	w.WriteUint16(r.Port)
	if r.DisableTargetCompression {
		c = nil
	}
	return name.Encode(w, c, r.Target)
}

func decodeSRV(r *wire.Reader) (*SRV, error) {
	priority, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	weight, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	port, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	target, err := name.Decode(r)
	if err != nil {
		return nil, err
	}
	return &SRV{Priority: priority, Weight: weight, Port: port, Target: target}, nil
}
