package domain

import (
	"bytes"
	"testing"

	"github.com/kdns/dnswire/internal/dns/name"
	"github.com/kdns/dnswire/internal/dns/types"
	"github.com/kdns/dnswire/internal/dns/wire"
)

func TestQuestion_EncodeScenario(t *testing.T) {
	q := NewQuestion("nim-lang.org", types.A, types.RRClassIN)
	w := wire.NewWriter(0)
	if err := q.Encode(w, nil); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := []byte{
		8, 'n', 'i', 'm', '-', 'l', 'a', 'n', 'g',
		3, 'o', 'r', 'g',
		0,
		0x00, 0x01, // QTYPE = A
		0x00, 0x01, // QCLASS = IN
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("Encode() = % x, want % x", w.Bytes(), want)
	}
	if len(want) != 18 {
		t.Fatalf("fixture length = %d, want 18", len(want))
	}
}

func TestQuestion_NormalizesTrailingDot(t *testing.T) {
	q := NewQuestion("", types.A, types.RRClassIN)
	if q.QName != name.Root {
		t.Errorf("QName = %q, want %q", q.QName, name.Root)
	}
	q2 := NewQuestion("example.com", types.A, types.RRClassIN)
	if q2.QName != "example.com." {
		t.Errorf("QName = %q, want %q", q2.QName, "example.com.")
	}
}

func TestQuestion_RoundTrip(t *testing.T) {
	q := NewQuestion("nim-lang.org", types.A, types.RRClassIN)
	w := wire.NewWriter(0)
	if err := q.Encode(w, nil); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := DecodeQuestion(wire.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeQuestion() error = %v", err)
	}
	if got != q {
		t.Fatalf("DecodeQuestion() = %+v, want %+v", got, q)
	}
}
