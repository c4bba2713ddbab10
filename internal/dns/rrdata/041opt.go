package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// Option is a single EDNS0 OPTION-CODE/OPTION-DATA pair (RFC 6891 §6.1.2).
type Option struct {
	Code uint16
	Data []byte
}

// OPT holds the RDATA of an EDNS0 pseudo-record: a sequence of options.
// The record's NAME/CLASS/TTL fields are not part of RDATA proper — RFC
// 6891 repurposes them to carry the UDP payload size and the extended
// RCODE/version/DO flag, which the domain package's OPTRecord type models
// separately from this struct.
type OPT struct {
	Options []Option
}

func (r *OPT) Type() types.RRType { return types.OPT }

func (r *OPT) Encode(w *wire.Writer, _ *name.Compressor) error {
	for _, opt := range r.Options {
		w.WriteUint16(opt.Code)
		w.WriteUint16(uint16(len(opt.Data)))
		w.WriteBytes(opt.Data)
	}
	return nil
}

func decodeOPT(r *wire.Reader, rdlength int) (*OPT, error) {
	end := r.Pos() + rdlength
	var opts []Option
	for r.Pos() < end {
		code, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		length, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		data, err := r.ReadBytes(int(length))
		if err != nil {
			return nil, err
		}
		opts = append(opts, Option{Code: code, Data: append([]byte(nil), data...)})
	}
	if r.Pos() != end {
		return nil, ErrMalformedRData
	}
	return &OPT{Options: opts}, nil
}
