package domain

import (
	"net"
	"testing"

	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/rrdata"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

func TestResourceRecord_EncodeScenario(t *testing.T) {
	rr := NewResourceRecord("nim-lang.org", types.RRClassIN, 300, &rrdata.A{Address: net.IPv4(172, 67, 132, 242)})

	c := name.NewCompressor()
	w := wire.NewWriter(0)
	w.WriteBytes(make([]byte, 12)) // simulated preceding header
	if err := name.Encode(w, c, "nim-lang.org."); err != nil {
		t.Fatalf("priming name.Encode() error = %v", err)
	}
	w.WriteUint16(1) // QTYPE
	w.WriteUint16(1) // QCLASS

	recordStart := w.Len()
	if err := rr.Encode(w, c); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got := w.Bytes()[recordStart:]
	want := []byte{
		0xC0, 0x0C, // pointer to offset 12
		0x00, 0x01, // TYPE=A
		0x00, 0x01, // CLASS=IN
		0x00, 0x00, 0x01, 0x2C, // TTL=300
		0x00, 0x04, // RDLENGTH
		172, 67, 132, 242,
	}
	if string(got) != string(want) {
		t.Fatalf("Encode() = % x, want % x", got, want)
	}
}

func TestResourceRecord_RoundTrip(t *testing.T) {
	rr := NewResourceRecord("example.com", types.RRClassIN, 3600, &rrdata.TXT{Strings: []string{"hello"}})
	c := name.NewCompressor()
	w := wire.NewWriter(0)
	if err := rr.Encode(w, c); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	r := wire.NewReader(w.Bytes())
	n, err := name.Decode(r)
	if err != nil {
		t.Fatalf("name.Decode() error = %v", err)
	}
	rawType, err := r.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16() error = %v", err)
	}
	got, err := DecodeResourceRecordBody(r, n, types.RRType(rawType))
	if err != nil {
		t.Fatalf("DecodeResourceRecordBody() error = %v", err)
	}
	if got.Name != rr.Name || got.Class != rr.Class || got.TTL != rr.TTL {
		t.Fatalf("DecodeResourceRecordBody() = %+v, want %+v", got, rr)
	}
	gotTXT, ok := got.RData.(*rrdata.TXT)
	if !ok || len(gotTXT.Strings) != 1 || gotTXT.Strings[0] != "hello" {
		t.Fatalf("RData = %+v, want TXT{[hello]}", got.RData)
	}
}
