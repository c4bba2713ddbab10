package domain

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/rrdata"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// ResourceRecord is any non-OPT resource record: a name, the TYPE/CLASS of
// its RDATA, a TTL, and the typed RDATA itself. TYPE is always the one
// reported by RData.Type() — there is no separate field to fall out of
// sync with it.
type ResourceRecord struct {
	Name  string
	Class types.RRClass
	TTL   int32
	RData rrdata.RData
}

// Type reports the record's RR type, derived from its RDATA.
func (rr ResourceRecord) Type() types.RRType {
	return rr.RData.Type()
}

// NewResourceRecord builds a ResourceRecord, normalizing name to carry a
// trailing dot.
func NewResourceRecord(rrName string, class types.RRClass, ttl int32, rdata rrdata.RData) ResourceRecord {
	return ResourceRecord{
		Name:  name.Normalize(rrName),
		Class: class,
		TTL:   ttl,
		RData: rdata,
	}
}

// Encode writes the record's name, fixed fields, RDLENGTH and RDATA to w.
// RDLENGTH is not known ahead of serializing variable-length RDATA, so a
// placeholder is written, the RDATA follows, and the placeholder is then
// back-patched with the actual length.
func (rr ResourceRecord) Encode(w *wire.Writer, c *name.Compressor) error {
	if err := name.Encode(w, c, rr.Name); err != nil {
		return err
	}
	w.WriteUint16(uint16(rr.Type()))
	w.WriteUint16(uint16(rr.Class))
	w.WriteUint32(uint32(rr.TTL))

	lengthPos := w.Len()
	w.WriteUint16(0)
	rdataStart := w.Len()
	if err := rr.RData.Encode(w, c); err != nil {
		return err
	}
	rdlength := w.Len() - rdataStart
	return w.PatchUint16(lengthPos, uint16(rdlength))
}

// DecodeResourceRecordBody reads the remainder of a generic resource
// record — CLASS, TTL, RDLENGTH and RDATA — given that its NAME has already
// been decoded to rrName and its TYPE already read as rrType.
func DecodeResourceRecordBody(r *wire.Reader, rrName string, rrType types.RRType) (ResourceRecord, error) {
	class, err := r.ReadUint16()
	if err != nil {
		return ResourceRecord{}, err
	}
	ttl, err := r.ReadUint32()
	if err != nil {
		return ResourceRecord{}, err
	}
	rdlength, err := r.ReadUint16()
	if err != nil {
		return ResourceRecord{}, err
	}
	rdata, err := rrdata.Decode(r, rrType, types.RRClass(class), int(rdlength))
	if err != nil {
		return ResourceRecord{}, err
	}
	return ResourceRecord{
		Name:  rrName,
		Class: types.RRClass(class),
		TTL:   int32(ttl),
		RData: rdata,
	}, nil
}
