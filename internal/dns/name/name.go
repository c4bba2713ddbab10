// Package name implements the DNS domain-name wire codec: label validation,
// the 63-octet label / 255-octet name limits, and the back-pointer
// compression scheme (RFC 1035 §4.1.4) shared by every name written into a
// single message.
//
// Grounded on the reference repo's encodeDomainName/decodeDomainName
// (internal/dns/common/rrdata) and its compression-pointer walk
// (internal/dns/gateways/wire/udp_codec.go), generalized to share one
// compression dictionary across an entire message rather than none at all.
package name

import (
	"strings"

	"github.com/kdns/dnswire/internal/dns/wire"
)

const (
	maxLabelLength = 63
	maxNameLength  = 254 // textual/octet budget excluding the root terminator
	pointerFlag    = 0xC0
	pointerMask    = 0x3FFF
)

// Root is the textual form of the DNS root name.
const Root = "."

// Normalize ensures name carries exactly one trailing dot, treating an
// empty string as the root. It does not otherwise alter case or content.
func Normalize(name string) string {
	if name == "" {
		return Root
	}
	if !strings.HasSuffix(name, ".") {
		return name + "."
	}
	return name
}

// splitLabels splits a trailing-dot name into its labels, dropping the
// trailing empty component produced by the root dot. "." itself yields no
// labels.
func splitLabels(name string) []string {
	trimmed := strings.TrimSuffix(name, ".")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, ".")
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlphaDigit(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// validateLabel enforces the length bound and the LDH (letter-digit-hyphen)
// character class, with the underscore exception for service labels (e.g.
// "_ldap._tcp.example.com.") permitted only as the first character.
func validateLabel(label string) error {
	if len(label) == 0 {
		return ErrEmptyInnerLabel
	}
	if len(label) > maxLabelLength {
		return ErrLabelTooLong
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case isAlphaDigit(c):
			continue
		case c == '_' && i == 0:
			continue
		case c == '-' && i > 0 && i < len(label)-1:
			continue
		default:
			return ErrInvalidLabelByte
		}
	}
	first, last := label[0], label[len(label)-1]
	if !isAlphaDigit(first) && first != '_' {
		return ErrInvalidLabelByte
	}
	if !isAlphaDigit(last) {
		return ErrInvalidLabelByte
	}
	return nil
}

// Compressor tracks, for a single message's worth of encoding, the absolute
// offsets at which name suffixes were first written. Lookups are
// case-insensitive (RFC 1035 §4.1.4 treats names as case-preserving but
// case-insensitive for comparison); the bytes actually written always keep
// the caller's original case. It must not be reused across messages: offsets
// are only valid relative to the buffer they were recorded against.
type Compressor struct {
	offsets map[string]int
}

// NewCompressor returns an empty compression dictionary for one message.
func NewCompressor() *Compressor {
	return &Compressor{offsets: make(map[string]int)}
}

// Encode writes name to w, consulting and updating c for compression.
// A nil Compressor disables compression entirely (every name is written in
// full) — used for RDATA variants, like strict-mode SRV targets, that must
// not be compressed.
func Encode(w *wire.Writer, c *Compressor, textual string) error {
	if textual == "" {
		return ErrEmptyName
	}
	if textual == Root {
		w.WriteUint8(0)
		return nil
	}
	if len(textual) > maxNameLength {
		return ErrNameTooLong
	}

	labels := splitLabels(textual)
	for i := range labels {
		remainder := strings.Join(labels[i:], ".") + "."
		if c != nil {
			key := strings.ToLower(remainder)
			if offset, ok := c.offsets[key]; ok {
				w.WriteUint16(uint16(pointerFlag<<8) | uint16(offset))
				return nil
			}
			if pos := w.Len(); pos <= pointerMask {
				c.offsets[key] = pos
			}
		}
		label := labels[i]
		if err := validateLabel(label); err != nil {
			return err
		}
		w.WriteUint8(uint8(len(label)))
		w.WriteBytes([]byte(label))
	}
	w.WriteUint8(0)
	return nil
}

// Decode reads a name starting at r's current position, following any
// compression pointer(s) it encounters, and leaves r positioned immediately
// after the name's first occurrence in the stream (i.e. after the
// terminator or, if the name started with a pointer, after that pointer).
func Decode(r *wire.Reader) (string, error) {
	var labels []string
	returnPos := -1
	steps := 0
	maxSteps := r.Len() + 1

	for {
		steps++
		if steps > maxSteps {
			return "", ErrPointerLoop
		}

		length, err := r.ReadUint8()
		if err != nil {
			return "", err
		}

		if length&0xC0 == 0xC0 {
			lo, err := r.ReadUint8()
			if err != nil {
				return "", err
			}
			offset := (int(length&0x3F) << 8) | int(lo)
			if returnPos < 0 {
				returnPos = r.Pos()
			}
			if err := r.Seek(offset); err != nil {
				return "", err
			}
			continue
		}

		if length == 0 {
			break
		}

		if length > maxLabelLength {
			return "", ErrLabelTooLong
		}

		b, err := r.ReadBytes(int(length))
		if err != nil {
			return "", err
		}
		labels = append(labels, string(b))

		total := 0
		for _, l := range labels {
			total += len(l) + 1
		}
		if total > maxNameLength {
			return "", ErrNameTooLong
		}
	}

	if returnPos >= 0 {
		if err := r.Seek(returnPos); err != nil {
			return "", err
		}
	}

	if len(labels) == 0 {
		return Root, nil
	}
	return strings.Join(labels, ".") + ".", nil
}
