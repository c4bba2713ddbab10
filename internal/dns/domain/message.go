package domain

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// maxSectionEntries is the largest count a u16 section-count field can
// represent.
const maxSectionEntries = 65535

// Message is a complete DNS message: a header, the question section, and
// the three resource-record sections. At most one OPT pseudo-record may be
// attached, always serialized as the last entry of the additional section.
type Message struct {
	Header      Header
	Questions   []Question
	Answers     []ResourceRecord
	Authorities []ResourceRecord
	Additionals []ResourceRecord
	OPT         *OPTRecord
}

// BuildMessage assembles a Message from a header and its section contents,
// recomputing the header's four section counts and folding an extended
// RCODE (header.Flags.RCode > 15) into opt — creating one with default
// EDNS parameters if the caller didn't supply one.
func BuildMessage(header Header, questions []Question, answers, authorities, additionals []ResourceRecord, opt *OPTRecord) (Message, error) {
	for _, n := range []int{len(questions), len(answers), len(authorities), len(additionals)} {
		if n > maxSectionEntries {
			return Message{}, ErrSectionCountOverflow
		}
	}

	if header.Flags.RCode > 15 {
		if opt == nil {
			fresh := NewOPTRecord(DefaultUDPPayloadSize, false, nil)
			opt = &fresh
		}
		opt.ExtRCode = uint8(header.Flags.RCode >> 4)
	}

	arcount := len(additionals)
	if opt != nil {
		arcount++
	}
	if arcount > maxSectionEntries {
		return Message{}, ErrSectionCountOverflow
	}

	header.QDCount = uint16(len(questions))
	header.ANCount = uint16(len(answers))
	header.NSCount = uint16(len(authorities))
	header.ARCount = uint16(arcount)

	return Message{
		Header:      header,
		Questions:   questions,
		Answers:     answers,
		Authorities: authorities,
		Additionals: additionals,
		OPT:         opt,
	}, nil
}

// EncodeTo serializes m's header and every section, in order, to w, sharing
// one compression dictionary across the whole message. The OPT record, if
// present, is written last.
func (m Message) EncodeTo(w *wire.Writer) error {
	m.Header.Encode(w)

	c := name.NewCompressor()
	for _, q := range m.Questions {
		if err := q.Encode(w, c); err != nil {
			return err
		}
	}
	for _, rr := range m.Answers {
		if err := rr.Encode(w, c); err != nil {
			return err
		}
	}
	for _, rr := range m.Authorities {
		if err := rr.Encode(w, c); err != nil {
			return err
		}
	}
	for _, rr := range m.Additionals {
		if err := rr.Encode(w, c); err != nil {
			return err
		}
	}
	if m.OPT != nil {
		if err := m.OPT.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMessage parses a complete Message from data: the header, then
// qdcount/ancount/nscount/arcount entries of their respective sections in
// order. Within the additional section, the first record whose TYPE is OPT
// is extracted into OPT and folded into the header's extended RCODE; any
// further OPT record (a protocol violation) is left as an ordinary
// ResourceRecord.
func DecodeMessage(data []byte) (Message, error) {
	r := wire.NewReader(data)

	header, err := DecodeHeader(r)
	if err != nil {
		return Message{}, err
	}

	questions := make([]Question, 0, header.QDCount)
	for i := 0; i < int(header.QDCount); i++ {
		q, err := DecodeQuestion(r)
		if err != nil {
			return Message{}, err
		}
		questions = append(questions, q)
	}

	answers, err := decodeRecords(r, header.ANCount)
	if err != nil {
		return Message{}, err
	}
	authorities, err := decodeRecords(r, header.NSCount)
	if err != nil {
		return Message{}, err
	}

	additionals := make([]ResourceRecord, 0, header.ARCount)
	var opt *OPTRecord
	for i := 0; i < int(header.ARCount); i++ {
		rrName, err := name.Decode(r)
		if err != nil {
			return Message{}, err
		}
		rawType, err := r.ReadUint16()
		if err != nil {
			return Message{}, err
		}
		rrType := types.RRType(rawType)

		if rrType == types.OPT && opt == nil {
			o, err := DecodeOPTRecordBody(r)
			if err != nil {
				return Message{}, err
			}
			opt = &o
			continue
		}
		rec, err := DecodeResourceRecordBody(r, rrName, rrType)
		if err != nil {
			return Message{}, err
		}
		additionals = append(additionals, rec)
	}

	if opt != nil {
		lowNibble := uint16(header.Flags.RCode) & 0x0F
		header.Flags.RCode = types.RCode(uint16(opt.ExtRCode)<<4 | lowNibble)
	}

	return Message{
		Header:      header,
		Questions:   questions,
		Answers:     answers,
		Authorities: authorities,
		Additionals: additionals,
		OPT:         opt,
	}, nil
}

func decodeRecords(r *wire.Reader, count uint16) ([]ResourceRecord, error) {
	recs := make([]ResourceRecord, 0, count)
	for i := 0; i < int(count); i++ {
		rrName, err := name.Decode(r)
		if err != nil {
			return nil, err
		}
		rawType, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		rec, err := DecodeResourceRecordBody(r, rrName, types.RRType(rawType))
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
