package coder

// A BitWriter packs individual bits MSB-first into a byte sequence.
// The zero value is an empty writer ready for use.
type BitWriter struct {
	bytes   []byte
	current uint8
	nbits   int
}

// WriteBit appends the lowest bit of bit to the stream.
func (w *BitWriter) WriteBit(bit int) {
	w.current = w.current<<1 | uint8(bit&1)
	w.nbits++
	if w.nbits == 8 {
		w.bytes = append(w.bytes, w.current)
		w.current = 0
		w.nbits = 0
	}
}

// Flush pads a partially filled byte with zero bits and appends it.
// Flush is a no-op when the stream is already on a byte boundary.
func (w *BitWriter) Flush() {
	if w.nbits > 0 {
		w.bytes = append(w.bytes, w.current<<(8-w.nbits))
		w.current = 0
		w.nbits = 0
	}
}

// Bytes returns the packed bytes written so far.
// Callers should Flush first, otherwise up to 7 trailing bits are still pending.
func (w *BitWriter) Bytes() []byte {
	return w.bytes
}

// A BitReader yields the bits of a byte sequence MSB-first.
// Once the sequence is exhausted it yields zero bits forever,
// since the decoder does not know in advance how many trailing bits it needs.
type BitReader struct {
	bytes   []byte
	index   int
	current uint8
	left    int
}

func NewBitReader(data []byte) *BitReader {
	return &BitReader{bytes: data}
}

// ReadBit returns the next bit, or 0 once the underlying bytes are exhausted.
func (r *BitReader) ReadBit() int {
	if r.left == 0 {
		if r.index >= len(r.bytes) {
			return 0
		}
		r.current = r.bytes[r.index]
		r.index++
		r.left = 8
	}
	bit := int(r.current>>7) & 1
	r.current <<= 1
	r.left--
	return bit
}
