package name

import (
	"strings"
	"testing"

	"github.com/kdns/dnswire/internal/dns/wire"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":             ".",
		".":             ".",
		"example.com":  "example.com.",
		"example.com.": "example.com.",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEncode_Root(t *testing.T) {
	w := wire.NewWriter(0)
	if err := Encode(w, nil, Root); err != nil {
		t.Fatalf("Encode(%q) error = %v", Root, err)
	}
	if got := w.Bytes(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("Encode(%q) = % x, want [00]", Root, got)
	}
}

func TestEncode_EmptyRejected(t *testing.T) {
	w := wire.NewWriter(0)
	if err := Encode(w, nil, ""); err != ErrEmptyName {
		t.Fatalf("Encode(\"\") error = %v, want ErrEmptyName", err)
	}
}

func TestEncode_SimpleName(t *testing.T) {
	w := wire.NewWriter(0)
	if err := Encode(w, nil, "nim-lang.org."); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := []byte{
		8, 'n', 'i', 'm', '-', 'l', 'a', 'n', 'g',
		3, 'o', 'r', 'g',
		0,
	}
	if got := w.Bytes(); string(got) != string(want) {
		t.Fatalf("Encode() = % x, want % x", got, want)
	}
}

func TestEncode_LabelTooLong(t *testing.T) {
	w := wire.NewWriter(0)
	label := strings.Repeat("a", 64)
	if err := Encode(w, nil, label+"."); err != ErrLabelTooLong {
		t.Fatalf("Encode() error = %v, want ErrLabelTooLong", err)
	}
}

func TestEncode_LabelExactly63Succeeds(t *testing.T) {
	w := wire.NewWriter(0)
	label := strings.Repeat("a", 63)
	if err := Encode(w, nil, label+"."); err != nil {
		t.Fatalf("Encode() error = %v, want nil", err)
	}
}

func TestEncode_NameLengthBoundary(t *testing.T) {
	// Build a name whose trailing-dot textual length is exactly 254, then 255.
	label := strings.Repeat("a", 63)
	name := strings.Join([]string{label, label, label, strings.Repeat("a", 61)}, ".") + "."
	if len(name) != 254 {
		t.Fatalf("test fixture length = %d, want 254", len(name))
	}
	w := wire.NewWriter(0)
	if err := Encode(w, nil, name); err != nil {
		t.Fatalf("Encode() at 254 chars error = %v, want nil", err)
	}

	tooLong := name[:len(name)-1] + "b."
	w2 := wire.NewWriter(0)
	if err := Encode(w2, nil, tooLong); err != ErrNameTooLong {
		t.Fatalf("Encode() at 255 chars error = %v, want ErrNameTooLong", err)
	}
}

func TestEncode_EmptyInnerLabel(t *testing.T) {
	w := wire.NewWriter(0)
	if err := Encode(w, nil, "foo..bar."); err != ErrEmptyInnerLabel {
		t.Fatalf("Encode() error = %v, want ErrEmptyInnerLabel", err)
	}
}

func TestEncode_UnderscoreServiceLabel(t *testing.T) {
	w := wire.NewWriter(0)
	if err := Encode(w, nil, "_ldap._tcp.example.com."); err != nil {
		t.Fatalf("Encode() error = %v, want nil", err)
	}
}

func TestEncode_UnderscoreOnlyValidFirst(t *testing.T) {
	w := wire.NewWriter(0)
	if err := Encode(w, nil, "foo_bar.example.com."); err != ErrInvalidLabelByte {
		t.Fatalf("Encode() error = %v, want ErrInvalidLabelByte", err)
	}
}

func TestCompression_SecondOccurrenceIsPointer(t *testing.T) {
	w := wire.NewWriter(0)
	c := NewCompressor()

	w.WriteBytes(make([]byte, 12)) // simulate a 12-byte header preceding the name
	if err := Encode(w, c, "nim-lang.org."); err != nil {
		t.Fatalf("first Encode() error = %v", err)
	}
	secondStart := w.Len()
	if err := Encode(w, c, "nim-lang.org."); err != nil {
		t.Fatalf("second Encode() error = %v", err)
	}

	got := w.Bytes()[secondStart:]
	if len(got) != 2 || got[0]&0xC0 != 0xC0 {
		t.Fatalf("second occurrence = % x, want a 2-byte pointer", got)
	}
	offset := int(got[0]&0x3F)<<8 | int(got[1])
	if offset != 12 {
		t.Fatalf("pointer offset = %d, want 12", offset)
	}
}

func TestCompression_MatchIsCaseInsensitive(t *testing.T) {
	w := wire.NewWriter(0)
	c := NewCompressor()

	w.WriteBytes(make([]byte, 12))
	if err := Encode(w, c, "Nim-Lang.ORG."); err != nil {
		t.Fatalf("first Encode() error = %v", err)
	}
	secondStart := w.Len()
	if err := Encode(w, c, "nim-lang.org."); err != nil {
		t.Fatalf("second Encode() error = %v", err)
	}

	got := w.Bytes()[secondStart:]
	if len(got) != 2 || got[0]&0xC0 != 0xC0 {
		t.Fatalf("differently-cased occurrence = % x, want a 2-byte pointer", got)
	}
}

func TestDecode_Simple(t *testing.T) {
	buf := []byte{
		8, 'n', 'i', 'm', '-', 'l', 'a', 'n', 'g',
		3, 'o', 'r', 'g',
		0,
	}
	r := wire.NewReader(buf)
	got, err := Decode(r)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "nim-lang.org." {
		t.Fatalf("Decode() = %q, want %q", got, "nim-lang.org.")
	}
	if r.Pos() != len(buf) {
		t.Fatalf("Decode() left pos = %d, want %d", r.Pos(), len(buf))
	}
}

func TestDecode_Root(t *testing.T) {
	r := wire.NewReader([]byte{0})
	got, err := Decode(r)
	if err != nil || got != "." {
		t.Fatalf("Decode() = %q, %v, want \".\", nil", got, err)
	}
}

func TestDecode_Pointer(t *testing.T) {
	buf := []byte{
		8, 'n', 'i', 'm', '-', 'l', 'a', 'n', 'g',
		3, 'o', 'r', 'g',
		0,
		0xC0, 0x00, // pointer back to offset 0
	}
	r := wire.NewReader(buf)
	if err := r.Seek(14); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	got, err := Decode(r)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "nim-lang.org." {
		t.Fatalf("Decode() = %q, want %q", got, "nim-lang.org.")
	}
	if r.Pos() != 16 {
		t.Fatalf("Decode() left pos = %d, want 16 (after the 2-byte pointer)", r.Pos())
	}
}

func TestDecode_PointerLoopBounded(t *testing.T) {
	// Pointer at offset 0 points to itself.
	buf := []byte{0xC0, 0x00}
	r := wire.NewReader(buf)
	if _, err := Decode(r); err != ErrPointerLoop {
		t.Fatalf("Decode() error = %v, want ErrPointerLoop", err)
	}
}

func TestDecode_LabelTooLong(t *testing.T) {
	buf := append([]byte{64}, make([]byte, 64)...)
	r := wire.NewReader(buf)
	if _, err := Decode(r); err != ErrLabelTooLong {
		t.Fatalf("Decode() error = %v, want ErrLabelTooLong", err)
	}
}
