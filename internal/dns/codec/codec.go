// Package codec is the public entry point for turning a domain.Message into
// its wire bytes and back. It adds nothing to the wire format itself — that
// lives in domain, rrdata and name — beyond the transport-facing detail those
// packages intentionally know nothing about: the 2-byte big-endian length
// prefix TCP uses to frame a message on a stream.
package codec

import (
	"github.com/kdns/dnswire/internal/dns/common/log"
	"github.com/kdns/dnswire/internal/dns/config"
	"github.com/kdns/dnswire/internal/dns/domain"
	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/rrdata"
	"github.com/kdns/dnswire/internal/dns/wire"
	"golang.org/x/net/idna"
)

// defaultBufferCapacity is the initial write-buffer size, sized for a
// typical non-EDNS UDP response; the writer grows past it on demand.
const defaultBufferCapacity = 512

// Encode serializes msg into its UDP wire form: no length prefix.
func Encode(msg domain.Message) ([]byte, error) {
	w := wire.NewWriter(defaultBufferCapacity)
	if err := msg.EncodeTo(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// EncodeTCP serializes msg and prepends the 2-byte big-endian length prefix
// TCP transport requires (RFC 1035 §4.2.2), the prefix itself excluded from
// the count.
func EncodeTCP(msg domain.Message) ([]byte, error) {
	w := wire.NewWriter(defaultBufferCapacity + 2)
	w.WriteUint16(0) // placeholder, patched below
	if err := msg.EncodeTo(w); err != nil {
		return nil, err
	}
	if err := w.PatchUint16(0, uint16(w.Len()-2)); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// EncodeWithOptions is Encode with CodecOptions-driven preprocessing applied
// first: SRV targets stop compressing when opts.StrictSRVCompression is set,
// and every name in msg is IDNA-normalized to its ASCII-Compatible-Encoding
// form when opts.IDNANormalize is set. msg is not mutated; the preprocessing
// runs on a shallow copy of its record slices.
func EncodeWithOptions(msg domain.Message, opts config.CodecOptions) ([]byte, error) {
	applyCodecOptions(&msg, opts)
	w := wire.NewWriter(opts.WriteBufferCapacity)
	if err := msg.EncodeTo(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func applyCodecOptions(msg *domain.Message, opts config.CodecOptions) {
	msg.Questions = append([]domain.Question(nil), msg.Questions...)
	for i := range msg.Questions {
		msg.Questions[i].QName = normalizeIDNA(msg.Questions[i].QName, opts)
	}
	msg.Answers = applyToRecords(msg.Answers, opts)
	msg.Authorities = applyToRecords(msg.Authorities, opts)
	msg.Additionals = applyToRecords(msg.Additionals, opts)
}

func applyToRecords(records []domain.ResourceRecord, opts config.CodecOptions) []domain.ResourceRecord {
	out := append([]domain.ResourceRecord(nil), records...)
	for i := range out {
		out[i].Name = normalizeIDNA(out[i].Name, opts)
		if srv, ok := out[i].RData.(*rrdata.SRV); ok {
			clone := *srv
			clone.DisableTargetCompression = opts.StrictSRVCompression
			clone.Target = normalizeIDNA(clone.Target, opts)
			out[i].RData = &clone
		}
	}
	return out
}

// normalizeIDNA converts n to its ASCII-Compatible-Encoding form when
// opts.IDNANormalize is set. A name that fails IDNA conversion (not a valid
// Unicode domain name to begin with) passes through unchanged; the ordinary
// label validation in name.Encode still catches whatever is wrong with it.
func normalizeIDNA(n string, opts config.CodecOptions) string {
	if !opts.IDNANormalize || n == "" {
		return n
	}
	ascii, err := idna.Lookup.ToASCII(n)
	if err != nil {
		return n
	}
	return name.Normalize(ascii)
}

// Decode parses data as a UDP-framed message: the entire buffer is the
// message, with no leading length prefix.
func Decode(data []byte) (domain.Message, error) {
	msg, err := domain.DecodeMessage(data)
	if err != nil {
		return domain.Message{}, err
	}
	logExtendedRCode(msg)
	return msg, nil
}

// DecodeTCP reads the 2-byte big-endian length prefix from the front of
// data, then decodes exactly that many following bytes as a message. Bytes
// beyond the framed message (e.g. a second message already buffered on the
// same stream) are ignored; the caller owns re-slicing for the next frame.
func DecodeTCP(data []byte) (domain.Message, error) {
	r := wire.NewReader(data)
	frameLen, err := r.ReadUint16()
	if err != nil {
		return domain.Message{}, ErrShortTCPPrefix
	}
	body, err := r.ReadBytes(int(frameLen))
	if err != nil {
		return domain.Message{}, ErrTCPLengthMismatch
	}
	return Decode(body)
}

// logExtendedRCode emits a debug trace when a decoded message carries an
// EDNS-extended response code, purely diagnostic.
func logExtendedRCode(msg domain.Message) {
	if msg.OPT == nil || msg.OPT.ExtRCode == 0 {
		return
	}
	log.Debug(map[string]any{
		"id":       msg.Header.ID,
		"rcode":    msg.Header.Flags.RCode.String(),
		"extRCode": msg.OPT.ExtRCode,
	}, "decoded message carries EDNS-extended rcode")
}
