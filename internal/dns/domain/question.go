package domain

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// Question is a single entry of a message's question section.
type Question struct {
	QName  string
	QType  types.RRType
	QClass types.RRClass
}

// NewQuestion builds a Question, normalizing qname to carry a trailing dot
// (an empty qname becomes the root).
func NewQuestion(qname string, qtype types.RRType, qclass types.RRClass) Question {
	return Question{
		QName:  name.Normalize(qname),
		QType:  qtype,
		QClass: qclass,
	}
}

// Encode writes the question's name (participating in compression), type
// and class to w.
func (q Question) Encode(w *wire.Writer, c *name.Compressor) error {
	if err := name.Encode(w, c, q.QName); err != nil {
		return err
	}
	w.WriteUint16(uint16(q.QType))
	w.WriteUint16(uint16(q.QClass))
	return nil
}

// DecodeQuestion reads a single question starting at r's current position.
func DecodeQuestion(r *wire.Reader) (Question, error) {
	qname, err := name.Decode(r)
	if err != nil {
		return Question{}, err
	}
	qtype, err := r.ReadUint16()
	if err != nil {
		return Question{}, err
	}
	qclass, err := r.ReadUint16()
	if err != nil {
		return Question{}, err
	}
	return Question{
		QName:  qname,
		QType:  types.RRType(qtype),
		QClass: types.RRClass(qclass),
	}, nil
}
