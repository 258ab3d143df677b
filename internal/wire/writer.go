package wire

// Writer collects bytes in logical order and produces the stored layout.
type Writer struct {
	buf []byte
}

// NewWriter creates a new Writer with an initial capacity.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// Bytes returns the written bytes in stored order.
// The final group is short when the logical length is not a multiple of
// GroupSize, exactly as a Reader expects it.
func (w *Writer) Bytes() []byte {
	return Pack(w.buf)
}

// Logical returns the written bytes in the order they were written.
func (w *Writer) Logical() []byte {
	return w.buf
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Reset clears the buffer for reuse.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
}

// WriteByte writes a single byte. Implements io.ByteWriter.
// Always returns nil error for in-memory buffer.
func (w *Writer) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

// WriteBytes writes a slice of bytes.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// Pad appends fill bytes until the logical length is a multiple of size.
func (w *Writer) Pad(size int, fill byte) {
	if size <= 0 {
		return
	}
	for len(w.buf)%size != 0 {
		w.buf = append(w.buf, fill)
	}
}

// Pack converts a logical byte sequence into stored order.
// The group reversal is its own inverse, so Pack(Unpack(b)) == b.
func Pack(logical []byte) []byte {
	out := make([]byte, len(logical))
	for i, b := range logical {
		out[Physical(i, len(logical))] = b
	}
	return out
}
