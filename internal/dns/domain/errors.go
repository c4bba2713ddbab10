// Package domain models the message-level DNS entities — Header, Flags,
// Question, ResourceRecord, OPTRecord and Message — and the invariants that
// bind them (section counts, RDATA/TYPE correspondence, the extended-RCODE
// fold between the header and an OPT record).
package domain

import "errors"

var (
	// ErrSectionCountOverflow reports that a section would need more than
	// 65,535 entries to hold all the records a Message builder was given.
	ErrSectionCountOverflow = errors.New("domain: section has more than 65535 entries")
	// ErrCharacterStringTooLong describes a <character-string> longer than
	// 255 bytes. No function in this package returns it; RDATA encoding
	// reports that case as rrdata.ErrCharStringTooLong.
	ErrCharacterStringTooLong = errors.New("domain: character-string exceeds 255 octets")
	// ErrUnsupportedType is reserved: unknown RR types never fail to decode,
	// they resolve to the rrdata.Unknown variant instead. No function in
	// this package returns it.
	ErrUnsupportedType = errors.New("domain: unsupported or mismatched record type")
	// ErrTypeRDataMismatch describes a TYPE that does not match its RData
	// variant. No function in this package returns it: a ResourceRecord
	// takes its TYPE from its RData, so the two cannot disagree.
	ErrTypeRDataMismatch = errors.New("domain: rdata variant does not match record type")
)
