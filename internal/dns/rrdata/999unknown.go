package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// Unknown holds the RDATA of a record type this codec has no dedicated
// struct for (RFC 3597), or of any record whose class is not IN — preserved
// as an opaque payload exactly as received, since the wire meaning of
// RDATA outside those cases is type- and class-specific.
type Unknown struct {
	RRType types.RRType
	Data   []byte
}

func (r *Unknown) Type() types.RRType { return r.RRType }

func (r *Unknown) Encode(w *wire.Writer, _ *name.Compressor) error {
	w.WriteBytes(r.Data)
	return nil
}

func decodeUnknown(r *wire.Reader, rrType types.RRType, rdlength int) (*Unknown, error) {
	b, err := r.ReadBytes(rdlength)
	if err != nil {
		return nil, err
	}
	return &Unknown{RRType: rrType, Data: append([]byte(nil), b...)}, nil
}
