// Package rrdata implements the typed RDATA codec for every resource record
// type this library understands: one struct per RR type, each able to
// encode itself onto a shared message buffer (participating in name
// compression where RFC 1035 permits it) and decode itself back out of one.
//
// Grounded on the reference repo's internal/dns/common/rrdata package, which
// took the same per-type-file layout (001a.go, 006soa.go, ...) but encoded
// RDATA as presentation-format strings; here each RR type is a distinct Go
// struct dispatched through the RData interface, matching how the rest of
// the corpus models closed sets of record variants.
package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// RData is implemented by every typed RDATA variant. Type identifies which
// RR type the value encodes as; Encode appends the wire form of the value
// to w, consulting c for any domain names it contains.
type RData interface {
	Type() types.RRType
	Encode(w *wire.Writer, c *name.Compressor) error
}

// Decode reads rdlength bytes of RDATA belonging to an RR of the given type
// and class, starting at r's current position, and returns the typed value.
//
// Records of a class other than IN are preserved as opaque payloads: this
// library only understands RDATA semantics for the Internet class. OPT is
// the one type decoded regardless of its CLASS field, since RFC 6891
// repurposes CLASS to carry the requestor's UDP payload size rather than a
// record class.
func Decode(r *wire.Reader, rrType types.RRType, rrClass types.RRClass, rdlength int) (RData, error) {
	start := r.Pos()

	var (
		rdata RData
		err   error
	)

	switch {
	case rrType == types.OPT:
		rdata, err = decodeOPT(r, rdlength)
	case rrClass != types.RRClassIN:
		rdata, err = decodeUnknown(r, rrType, rdlength)
	default:
		switch rrType {
		case types.A:
			rdata, err = decodeA(r, rdlength)
		case types.NS:
			rdata, err = decodeNS(r)
		case types.MD:
			rdata, err = decodeMD(r)
		case types.MF:
			rdata, err = decodeMF(r)
		case types.CNAME:
			rdata, err = decodeCNAME(r)
		case types.SOA:
			rdata, err = decodeSOA(r)
		case types.MB:
			rdata, err = decodeMB(r)
		case types.MG:
			rdata, err = decodeMG(r)
		case types.MR:
			rdata, err = decodeMR(r)
		case types.NULLR:
			rdata, err = decodeNULL(r, rdlength)
		case types.WKS:
			rdata, err = decodeWKS(r, rdlength)
		case types.PTR:
			rdata, err = decodePTR(r)
		case types.HINFO:
			rdata, err = decodeHINFO(r)
		case types.MINFO:
			rdata, err = decodeMINFO(r)
		case types.MX:
			rdata, err = decodeMX(r)
		case types.TXT:
			rdata, err = decodeTXT(r, rdlength)
		case types.AAAA:
			rdata, err = decodeAAAA(r, rdlength)
		case types.SRV:
			rdata, err = decodeSRV(r)
		case types.CAA:
			rdata, err = decodeCAA(r, rdlength)
		default:
			rdata, err = decodeUnknown(r, rrType, rdlength)
		}
	}
	if err != nil {
		return nil, err
	}

	// Names may carry the reader away via compression pointers, but
	// name.Decode always restores the position to just past the pointer
	// (or terminator) it started at, so the bytes actually consumed from
	// this RDATA's own span must still match RDLENGTH exactly.
	if consumed := r.Pos() - start; consumed != rdlength {
		return nil, ErrRDLengthMismatch
	}
	return rdata, nil
}
