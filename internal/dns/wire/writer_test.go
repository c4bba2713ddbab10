package wire

import (
	"bytes"
	"testing"
)

func TestWriter_WriteUints(t *testing.T) {
	w := NewWriter(0)
	w.WriteUint8(0x01)
	w.WriteUint16(0x0203)
	w.WriteUint32(0x04050607)
	w.WriteBytes([]byte{0x08})

	want := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("Bytes() = % x, want % x", w.Bytes(), want)
	}
	if w.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", w.Len(), len(want))
	}
}

func TestWriter_PatchUint16(t *testing.T) {
	w := NewWriter(0)
	placeholder := w.Len()
	w.WriteUint16(0x0000)
	w.WriteBytes([]byte{0xAA, 0xBB, 0xCC})

	if err := w.PatchUint16(placeholder, 3); err != nil {
		t.Fatalf("PatchUint16() error = %v", err)
	}
	want := []byte{0x00, 0x03, 0xAA, 0xBB, 0xCC}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("Bytes() = % x, want % x", w.Bytes(), want)
	}

	if err := w.PatchUint16(10, 1); err != ErrInvalidOffset {
		t.Fatalf("PatchUint16 past end error = %v, want ErrInvalidOffset", err)
	}
}
