package swf

// Line is a straight edge record: a delta-encoded segment from the current
// drawing point. Axis-aligned segments use a shorter wire form selected
// automatically on encode.
type Line struct {
	DX, DY int32
}

var _ ShapeRecord = (*Line)(nil)

func (l *Line) Kind() RecordKind { return KindStraightEdge }

func (l *Line) sealed() {}

// Copy returns an independent clone of the line.
func (l *Line) Copy() ShapeRecord {
	c := *l
	return &c
}

// fieldWidth returns the delta field width, derived from the magnitude of the
// coordinates that will actually be written. The wire format stores width-2
// in four bits, so the minimum is 2.
func (l *Line) fieldWidth() uint {
	switch {
	case l.general():
		return maxSignedBits(2, l.DX, l.DY)
	case l.DX == 0:
		return maxSignedBits(2, l.DY)
	default:
		return maxSignedBits(2, l.DX)
	}
}

// general reports whether both deltas are non-zero, requiring the long form.
func (l *Line) general() bool { return l.DX != 0 && l.DY != 0 }

// NumBits implements ShapeRecord.
func (l *Line) NumBits(ctx *Context) int {
	n := 7 // type(2) + width(4) + general flag(1)
	if l.general() {
		n += 2 * int(l.fieldWidth())
	} else {
		n += 1 + int(l.fieldWidth())
	}
	ctx.shapeBits += n
	return n
}

// Encode implements ShapeRecord.
func (l *Line) Encode(w *Writer, ctx *Context) error {
	width := l.fieldWidth()
	w.WriteUint(3, 2) // edge, straight
	w.WriteUint(uint32(width-2), 4)
	if l.general() {
		w.WriteUint(1, 1)
		w.WriteInt(l.DX, width)
		w.WriteInt(l.DY, width)
	} else {
		w.WriteUint(0, 1)
		if l.DX == 0 {
			w.WriteUint(1, 1) // vertical
			w.WriteInt(l.DY, width)
		} else {
			w.WriteUint(0, 1) // horizontal
			w.WriteInt(l.DX, width)
		}
	}
	return w.Err()
}

// decodeLine parses a straight edge whose 6-bit header h has already been
// consumed; the low four bits of h carry the delta field width.
func decodeLine(r *Reader, h uint32) (*Line, error) {
	width := uint(h&0x0F) + 2
	l := &Line{}
	if r.ReadUint(1) == 1 {
		l.DX = r.ReadInt(width)
		l.DY = r.ReadInt(width)
	} else if r.ReadUint(1) == 1 {
		l.DY = r.ReadInt(width)
	} else {
		l.DX = r.ReadInt(width)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return l, nil
}
