package domain

import "github.com/kdns/dnswire/internal/dns/types"

// Bit positions within header byte 2 (RFC 1035 §4.1.1).
const (
	bitQR       uint8 = 0x80
	maskOpcode  uint8 = 0x78
	shiftOpcode       = 3
	bitAA       uint8 = 0x04
	bitTC       uint8 = 0x02
	bitRD       uint8 = 0x01
)

// Bit positions within header byte 3. Z here is the single reserved bit at
// position 6; AD and CD (RFC 4035) occupy the two bit positions below it
// that legacy RFC 1035 lumped into a 3-bit "Z must be zero" field.
const (
	bitRA       uint8 = 0x80
	bitZ        uint8 = 0x40
	bitAD       uint8 = 0x20
	bitCD       uint8 = 0x10
	maskRCodeLo uint8 = 0x0F
)

// Flags is the DNS header's second 16-bit word, modeled as its constituent
// fields rather than a raw bitmask.
type Flags struct {
	QR     types.QR
	Opcode types.Opcode
	AA     bool
	TC     bool
	RD     bool
	RA     bool
	Z      bool // reserved; MUST be false when encoding
	AD     bool // RFC 4035 Authenticated Data
	CD     bool // RFC 4035 Checking Disabled
	RCode  types.RCode
}

// encodeBytes packs the flags into the header's two flag bytes. RCode is
// truncated to its low nibble; a value >15 is expected to have already been
// folded into an OPT record by the caller (see domain.BuildMessage).
func (f Flags) encodeBytes() (byte2, byte3 byte) {
	byte2 = uint8(f.QR)<<7&bitQR |
		uint8(f.Opcode)<<shiftOpcode&maskOpcode |
		boolBit(f.AA, bitAA) |
		boolBit(f.TC, bitTC) |
		boolBit(f.RD, bitRD)

	byte3 = boolBit(f.RA, bitRA) |
		boolBit(f.Z, bitZ) |
		boolBit(f.AD, bitAD) |
		boolBit(f.CD, bitCD) |
		uint8(f.RCode)&maskRCodeLo

	return byte2, byte3
}

// decodeFlags unpacks the header's two flag bytes into a Flags value. The
// RCode field holds only the low nibble; message-level decoding overwrites
// it with the extended value once/if an OPT record is parsed.
func decodeFlags(byte2, byte3 byte) Flags {
	return Flags{
		QR:     types.QR(byte2 & bitQR >> 7),
		Opcode: types.Opcode(byte2 & maskOpcode >> shiftOpcode),
		AA:     byte2&bitAA != 0,
		TC:     byte2&bitTC != 0,
		RD:     byte2&bitRD != 0,
		RA:     byte3&bitRA != 0,
		Z:      byte3&bitZ != 0,
		AD:     byte3&bitAD != 0,
		CD:     byte3&bitCD != 0,
		RCode:  types.RCode(byte3 & maskRCodeLo),
	}
}

func boolBit(b bool, bit uint8) uint8 {
	if b {
		return bit
	}
	return 0
}
