package swf

// MovieTag is one top-level tag in the container stream. The envelope is a
// two-byte header packing the tag code in the upper ten bits and the payload
// length in the lower six; lengths of 0x3F and above use a long form with a
// four-byte length following the header.
type MovieTag interface {
	// NumBytes returns the encoded size in bytes, including the envelope.
	NumBytes() int
	// Encode writes the tag.
	Encode(w *Writer) error
	// Copy returns an independent clone of the tag.
	Copy() MovieTag
}

// RawTag carries a tag's envelope without interpreting the payload. It is the
// default decoding for the movie tag category.
type RawTag struct {
	Code uint16
	Data []byte
}

var _ MovieTag = (*RawTag)(nil)

func (t *RawTag) longForm() bool { return len(t.Data) >= 0x3F }

func (t *RawTag) NumBytes() int {
	if t.longForm() {
		return 6 + len(t.Data)
	}
	return 2 + len(t.Data)
}

func (t *RawTag) Encode(w *Writer) error {
	if t.longForm() {
		w.WriteUint16(t.Code<<6 | 0x3F)
		w.WriteUint32(uint32(len(t.Data)))
	} else {
		w.WriteUint16(t.Code<<6 | uint16(len(t.Data)))
	}
	w.WriteBytes(t.Data)
	return w.Err()
}

func (t *RawTag) Copy() MovieTag {
	c := &RawTag{Code: t.Code}
	if t.Data != nil {
		c.Data = append([]byte(nil), t.Data...)
	}
	return c
}

// DecodeTag is the default movie tag factory.
func DecodeTag(r *Reader, ctx *Context) (MovieTag, error) {
	h := r.ReadUint16()
	if err := r.Err(); err != nil {
		return nil, err
	}
	t := &RawTag{Code: h >> 6}
	n := int(h & 0x3F)
	if n == 0x3F {
		n = int(r.ReadUint32())
	}
	t.Data = r.ReadBytes(n)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
