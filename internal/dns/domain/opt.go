package domain

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/rrdata"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// DefaultUDPPayloadSize is the OPT record's default advertised UDP payload
// size when a builder inserts one implicitly (RFC 6891 recommends a
// conservative default; 512 matches the pre-EDNS maximum).
const DefaultUDPPayloadSize = 512

// OPTRecord is the EDNS0 pseudo-record (RFC 6891). Unlike a regular
// ResourceRecord, its CLASS and TTL slots are repurposed: CLASS carries the
// requestor's UDP payload size, and TTL is split into the upper 8 bits of
// an extended RCODE, a version byte, a DO flag, and a 15-bit reserved Z.
type OPTRecord struct {
	UDPSize  uint16
	ExtRCode uint8
	Version  uint8
	DO       bool
	Z        uint16 // 15-bit, reserved
	Options  []rrdata.Option
}

// NewOPTRecord builds an OPT record with ExtRCode and Version zeroed — the
// extended RCODE is filled in by BuildMessage when the header's RCode
// exceeds 15.
func NewOPTRecord(udpSize uint16, do bool, options []rrdata.Option) OPTRecord {
	return OPTRecord{UDPSize: udpSize, DO: do, Options: options}
}

// rdata returns the typed RDATA view of the record's options.
func (o OPTRecord) rdata() *rrdata.OPT {
	return &rrdata.OPT{Options: o.Options}
}

// Encode writes the OPT record: root name, TYPE=OPT, then its overlaid
// CLASS/TTL slots, then RDLENGTH and RDATA.
func (o OPTRecord) Encode(w *wire.Writer) error {
	if err := name.Encode(w, nil, name.Root); err != nil {
		return err
	}
	w.WriteUint16(uint16(types.OPT))
	w.WriteUint16(o.UDPSize)

	w.WriteUint8(o.ExtRCode)
	w.WriteUint8(o.Version)
	var doZ uint16
	if o.DO {
		doZ |= 0x8000
	}
	doZ |= o.Z & 0x7FFF
	w.WriteUint16(doZ)

	lengthPos := w.Len()
	w.WriteUint16(0)
	rdataStart := w.Len()
	if err := o.rdata().Encode(w, nil); err != nil {
		return err
	}
	rdlength := w.Len() - rdataStart
	return w.PatchUint16(lengthPos, uint16(rdlength))
}

// DecodeOPTRecordBody reads the remainder of an OPT pseudo-record — its
// overlaid CLASS/TTL slots, RDLENGTH and RDATA — given that its root NAME
// and TYPE=OPT have already been consumed from r.
func DecodeOPTRecordBody(r *wire.Reader) (OPTRecord, error) {
	udpSize, err := r.ReadUint16()
	if err != nil {
		return OPTRecord{}, err
	}
	extRCode, err := r.ReadUint8()
	if err != nil {
		return OPTRecord{}, err
	}
	version, err := r.ReadUint8()
	if err != nil {
		return OPTRecord{}, err
	}
	doZ, err := r.ReadUint16()
	if err != nil {
		return OPTRecord{}, err
	}
	rdlength, err := r.ReadUint16()
	if err != nil {
		return OPTRecord{}, err
	}
	rdata, err := rrdata.Decode(r, types.OPT, types.RRClass(udpSize), int(rdlength))
	if err != nil {
		return OPTRecord{}, err
	}
	opt := rdata.(*rrdata.OPT)
	return OPTRecord{
		UDPSize:  udpSize,
		ExtRCode: extRCode,
		Version:  version,
		DO:       doZ&0x8000 != 0,
		Z:        doZ & 0x7FFF,
		Options:  opt.Options,
	}, nil
}
