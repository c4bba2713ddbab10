package domain

import (
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// HeaderSize is the fixed wire size of a DNS header in bytes.
const HeaderSize = 12

// Header is the DNS message header (RFC 1035 §4.1.1): a 16-bit ID, the
// packed Flags word, and four section counts.
type Header struct {
	ID      uint16
	Flags   Flags
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

// NewQueryHeader returns a Header suitable as the starting point for a
// query: QR=Query, Opcode=Query, RD as given, everything else zeroed.
func NewQueryHeader(id uint16, rd bool) Header {
	return Header{
		ID: id,
		Flags: Flags{
			QR:     types.Query,
			Opcode: types.OpcodeQuery,
			RD:     rd,
		},
	}
}

// NewResponseHeader returns a Header suitable as the starting point for a
// response to the given query ID.
func NewResponseHeader(id uint16, opcode types.Opcode, rd, ra bool, rcode types.RCode) Header {
	return Header{
		ID: id,
		Flags: Flags{
			QR:     types.Response,
			Opcode: opcode,
			RD:     rd,
			RA:     ra,
			RCode:  rcode,
		},
	}
}

// AuthenticData reports whether the AD (RFC 4035) bit is set.
func (h Header) AuthenticData() bool { return h.Flags.AD }

// CheckingDisabled reports whether the CD (RFC 4035) bit is set.
func (h Header) CheckingDisabled() bool { return h.Flags.CD }

// RecursionDesired reports whether the RD bit is set.
func (h Header) RecursionDesired() bool { return h.Flags.RD }

// RecursionAvailable reports whether the RA bit is set.
func (h Header) RecursionAvailable() bool { return h.Flags.RA }

// Authoritative reports whether the AA bit is set.
func (h Header) Authoritative() bool { return h.Flags.AA }

// Truncated reports whether the TC bit is set.
func (h Header) Truncated() bool { return h.Flags.TC }

// IsQuery reports whether the message is a query (QR=0).
func (h Header) IsQuery() bool { return h.Flags.QR == types.Query }

// IsResponse reports whether the message is a response (QR=1).
func (h Header) IsResponse() bool { return h.Flags.QR == types.Response }

// Encode appends the header's 12 wire bytes to w.
func (h Header) Encode(w *wire.Writer) {
	w.WriteUint16(h.ID)
	byte2, byte3 := h.Flags.encodeBytes()
	w.WriteUint8(byte2)
	w.WriteUint8(byte3)
	w.WriteUint16(h.QDCount)
	w.WriteUint16(h.ANCount)
	w.WriteUint16(h.NSCount)
	w.WriteUint16(h.ARCount)
}

// DecodeHeader reads the 12-byte header starting at r's current position.
func DecodeHeader(r *wire.Reader) (Header, error) {
	id, err := r.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	byte2, err := r.ReadUint8()
	if err != nil {
		return Header{}, err
	}
	byte3, err := r.ReadUint8()
	if err != nil {
		return Header{}, err
	}
	h := Header{ID: id, Flags: decodeFlags(byte2, byte3)}
	if h.QDCount, err = r.ReadUint16(); err != nil {
		return Header{}, err
	}
	if h.ANCount, err = r.ReadUint16(); err != nil {
		return Header{}, err
	}
	if h.NSCount, err = r.ReadUint16(); err != nil {
		return Header{}, err
	}
	if h.ARCount, err = r.ReadUint16(); err != nil {
		return Header{}, err
	}
	return h, nil
}
