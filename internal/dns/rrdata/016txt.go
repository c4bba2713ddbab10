package rrdata

import (
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

// TXT holds an RFC 1035 §3.3.14 text record: one or more character-strings.
type TXT struct {
	Strings []string
}

func (r *TXT) Type() types.RRType { return types.TXT }

func (r *TXT) Encode(w *wire.Writer, _ *name.Compressor) error {
	for _, s := range r.Strings {
		if err := writeCharString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func decodeTXT(r *wire.Reader, rdlength int) (*TXT, error) {
	end := r.Pos() + rdlength
	var strs []string
	for r.Pos() < end {
		s, err := readCharString(r)
		if err != nil {
			return nil, err
		}
		strs = append(strs, s)
	}
	if r.Pos() != end {
		return nil, ErrMalformedRData
	}
	return &TXT{Strings: strs}, nil
}
