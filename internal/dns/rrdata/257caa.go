package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// CAA holds an RFC 8659 certification-authority-authorization record. The
// Value is opaque per RFC 8659 §4: issue/issuewild carry a CA domain
// (usually without a trailing dot), iodef carries a mailto: or https: URI —
// neither should be run through domain-name normalization.
type CAA struct {
	Flags uint8
	Tag   string
	Value []byte
}

// caaCriticalBit is the only flag bit RFC 8659 §4 defines (issuer
// critical); every other bit is reserved and MUST be zero on the wire.
const caaCriticalBit = 0x80

func (r *CAA) Type() types.RRType { return types.CAA }

func (r *CAA) Encode(w *wire.Writer, _ *name.Compressor) error {
	if len(r.Tag) > 255 {
		return ErrCharStringTooLong
	}
	if r.Flags&^uint8(caaCriticalBit) != 0 {
		return ErrMalformedRData
	}
	w.WriteUint8(r.Flags)
	w.WriteUint8(uint8(len(r.Tag)))
	w.WriteBytes([]byte(r.Tag))
	w.WriteBytes(r.Value)
	return nil
}

func decodeCAA(r *wire.Reader, rdlength int) (*CAA, error) {
	if rdlength < 2 {
		return nil, ErrMalformedRData
	}
	flags, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	tagLen, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if int(tagLen) > rdlength-2 {
		return nil, ErrMalformedRData
	}
	tag, err := r.ReadBytes(int(tagLen))
	if err != nil {
		return nil, err
	}
	value, err := r.ReadBytes(rdlength - 2 - int(tagLen))
	if err != nil {
		return nil, err
	}
	return &CAA{
		Flags: flags,
		Tag:   string(tag),
		Value: append([]byte(nil), value...),
	}, nil
}
