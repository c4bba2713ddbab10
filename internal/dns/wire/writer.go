package wire

import "encoding/binary"

// Writer is an append-only byte buffer with big-endian integer writes and
// the ability to patch previously-written bytes in place — used to back-fill
// an RDLENGTH placeholder once the variable-length RDATA that follows it has
// been serialized. A Writer is not safe for concurrent use.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with the given initial capacity pre-allocated.
// capacity is a hint, not a limit: the buffer grows as needed.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// Len returns the number of bytes written so far; since a Writer only ever
// appends, this also doubles as the writer's current absolute position —
// exactly the value needed to record a compression-dictionary offset or a
// placeholder position.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the accumulated buffer. The returned slice aliases the
// Writer's internal storage.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteUint8 appends a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteUint16 appends a big-endian 16-bit unsigned integer.
func (w *Writer) WriteUint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteUint32 appends a big-endian 32-bit unsigned integer.
func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// PatchUint16 overwrites the 2 bytes at absolute offset pos with v. Used
// once a placeholder field's real value (e.g. RDLENGTH) becomes known.
func (w *Writer) PatchUint16(pos int, v uint16) error {
	if pos < 0 || pos+2 > len(w.buf) {
		return ErrInvalidOffset
	}
	binary.BigEndian.PutUint16(w.buf[pos:pos+2], v)
	return nil
}
