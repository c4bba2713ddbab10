package domain

import (
	"fmt"
	"strings"
)

// String renders a one-line summary of the question suitable for logging.
func (q Question) String() string {
	return fmt.Sprintf("%s %s %s", q.QName, q.QClass, q.QType)
}

// String renders a one-line summary of the record suitable for logging.
func (rr ResourceRecord) String() string {
	return fmt.Sprintf("%s %d %s %s %v", rr.Name, rr.TTL, rr.Class, rr.Type(), rr.RData)
}

// String renders a one-line summary of the OPT pseudo-record.
func (o OPTRecord) String() string {
	return fmt.Sprintf(". OPT udpsize=%d version=%d do=%v extrcode=%d %v", o.UDPSize, o.Version, o.DO, o.ExtRCode, o.rdata())
}

// String renders a diagnostic summary of the whole message: the header
// followed by each non-empty section, one entry per line. It is meant for
// logging and the example CLI tool, not for a zone-file style dump.
func (m Message) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "id=%d %s opcode=%s rcode=%s qd=%d an=%d ns=%d ar=%d\n",
		m.Header.ID, m.Header.Flags.QR, m.Header.Flags.Opcode, m.Header.Flags.RCode,
		m.Header.QDCount, m.Header.ANCount, m.Header.NSCount, m.Header.ARCount)
	for _, q := range m.Questions {
		fmt.Fprintf(&b, ";; QUESTION\t%s\n", q)
	}
	writeSection(&b, "ANSWER", m.Answers)
	writeSection(&b, "AUTHORITY", m.Authorities)
	writeSection(&b, "ADDITIONAL", m.Additionals)
	if m.OPT != nil {
		fmt.Fprintf(&b, ";; ADDITIONAL\t%s\n", *m.OPT)
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeSection(b *strings.Builder, label string, records []ResourceRecord) {
	for _, rr := range records {
		fmt.Fprintf(b, ";; %s\t%s\n", label, rr)
	}
}
