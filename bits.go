package swf

import "fmt"

// Reader reads bit fields from an in-memory buffer. Fields are packed
// most-significant-bit first. The reader tracks the first error encountered;
// subsequent reads become no-ops, so a sequence of reads can be issued without
// checking after each one.
type Reader struct {
	data []byte
	pos  int // bit offset from the start of data
	err  error
}

// NewReader creates a Reader positioned at the first bit of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current position in bits from the start of the buffer.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int { return len(r.data)*8 - r.pos }

// Err returns the first error encountered, if any.
func (r *Reader) Err() error { return r.err }

// setError records the first non-nil error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// ReadUint reads an unsigned field of the given width (0-32 bits).
func (r *Reader) ReadUint(width uint) uint32 {
	if r.err != nil || width == 0 {
		return 0
	}
	if width > 32 {
		r.setError(fmt.Errorf("%w: %d", ErrBitWidth, width))
		return 0
	}
	end := r.pos + int(width)
	if end > len(r.data)*8 {
		r.setError(fmt.Errorf("%w: need %d bits at bit %d of %d", ErrTruncatedData, width, r.pos, len(r.data)*8))
		return 0
	}
	var v uint64
	for p := r.pos &^ 7; p < end; p += 8 {
		v = v<<8 | uint64(r.data[p>>3])
	}
	v >>= uint(-end & 7)
	r.pos = end
	return uint32(v) & uint32((uint64(1)<<width)-1)
}

// ReadInt reads a signed two's-complement field of the given width.
func (r *Reader) ReadInt(width uint) int32 {
	v := r.ReadUint(width)
	if r.err != nil || width == 0 {
		return 0
	}
	// Sign-extend from the field's top bit.
	return int32(v<<(32-width)) >> (32 - width)
}

// ReadUint8 reads one byte. The read need not be byte aligned.
func (r *Reader) ReadUint8() uint8 { return uint8(r.ReadUint(8)) }

// ReadUint16 reads a two-byte integer in the format's byte order.
func (r *Reader) ReadUint16() uint16 {
	var buf [2]byte
	buf[0] = r.ReadUint8()
	buf[1] = r.ReadUint8()
	if r.err != nil {
		return 0
	}
	return Order.Uint16(buf[:])
}

// ReadUint32 reads a four-byte integer in the format's byte order.
func (r *Reader) ReadUint32() uint32 {
	var buf [4]byte
	for i := range buf {
		buf[i] = r.ReadUint8()
	}
	if r.err != nil {
		return 0
	}
	return Order.Uint32(buf[:])
}

// ReadBytes reads n bytes into a new slice.
func (r *Reader) ReadBytes(n int) []byte {
	if r.err != nil || n <= 0 {
		return nil
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = r.ReadUint8()
	}
	if r.err != nil {
		return nil
	}
	return buf
}

// AlignToByte advances the position to the next byte boundary. It is
// idempotent: an already-aligned reader is left unchanged.
func (r *Reader) AlignToByte() {
	if r.err != nil {
		return
	}
	r.pos = Roundup(r.pos, 8)
}

// Rewind moves the position back by n bits.
func (r *Reader) Rewind(n int) {
	if r.err != nil {
		return
	}
	if n < 0 || n > r.pos {
		r.setError(fmt.Errorf("%w: rewind %d bits at bit %d", ErrInvalidRewind, n, r.pos))
		return
	}
	r.pos -= n
}

// Writer writes bit fields to a growing in-memory buffer. Fields are packed
// most-significant-bit first. Like Reader it latches the first error and turns
// subsequent writes into no-ops.
type Writer struct {
	buf   []byte
	acc   uint64 // pending bits, most recent in the low end
	nbits uint   // number of pending bits in acc
	err   error
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Pos returns the number of bits written so far.
func (w *Writer) Pos() int { return len(w.buf)*8 + int(w.nbits) }

// Err returns the first error encountered, if any.
func (w *Writer) Err() error { return w.err }

// setError records the first non-nil error.
func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// WriteUint writes the low width bits of v (0-32 bits).
func (w *Writer) WriteUint(v uint32, width uint) {
	if w.err != nil || width == 0 {
		return
	}
	if width > 32 {
		w.setError(fmt.Errorf("%w: %d", ErrBitWidth, width))
		return
	}
	w.acc = w.acc<<width | uint64(v)&((uint64(1)<<width)-1)
	w.nbits += width
	for w.nbits >= 8 {
		w.buf = append(w.buf, byte(w.acc>>(w.nbits-8)))
		w.nbits -= 8
	}
	w.acc &= (uint64(1) << w.nbits) - 1
}

// WriteInt writes v as a signed two's-complement field of the given width.
func (w *Writer) WriteInt(v int32, width uint) {
	w.WriteUint(uint32(v), width)
}

// WriteUint8 writes one byte.
func (w *Writer) WriteUint8(v uint8) { w.WriteUint(uint32(v), 8) }

// WriteUint16 writes a two-byte integer in the format's byte order.
func (w *Writer) WriteUint16(v uint16) {
	var buf [2]byte
	Order.PutUint16(buf[:], v)
	w.WriteUint8(buf[0])
	w.WriteUint8(buf[1])
}

// WriteUint32 writes a four-byte integer in the format's byte order.
func (w *Writer) WriteUint32(v uint32) {
	var buf [4]byte
	Order.PutUint32(buf[:], v)
	for _, b := range buf {
		w.WriteUint8(b)
	}
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(p []byte) {
	for _, b := range p {
		w.WriteUint8(b)
	}
}

// AlignToByte pads the stream with zero bits up to the next byte boundary.
// It is idempotent: an already-aligned writer is left unchanged.
func (w *Writer) AlignToByte() {
	if w.err != nil || w.nbits == 0 {
		return
	}
	w.WriteUint(0, 8-w.nbits)
}

// Bytes aligns the stream and returns the written buffer.
func (w *Writer) Bytes() []byte {
	w.AlignToByte()
	return w.buf
}

// Result aligns the stream and returns the buffer with the final error state.
func (w *Writer) Result() ([]byte, error) {
	w.AlignToByte()
	return w.buf, w.err
}
