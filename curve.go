package swf

// Curve is a curved edge record: a quadratic segment defined by a delta to
// the control point and a further delta from the control point to the anchor.
// Both deltas share one field width.
type Curve struct {
	ControlDX, ControlDY int32
	AnchorDX, AnchorDY   int32
}

var _ ShapeRecord = (*Curve)(nil)

func (c *Curve) Kind() RecordKind { return KindCurvedEdge }

func (c *Curve) sealed() {}

// Copy returns an independent clone of the curve.
func (c *Curve) Copy() ShapeRecord {
	d := *c
	return &d
}

func (c *Curve) fieldWidth() uint {
	return maxSignedBits(2, c.ControlDX, c.ControlDY, c.AnchorDX, c.AnchorDY)
}

// NumBits implements ShapeRecord.
func (c *Curve) NumBits(ctx *Context) int {
	n := 6 + 4*int(c.fieldWidth()) // type(2) + width(4) + four deltas
	ctx.shapeBits += n
	return n
}

// Encode implements ShapeRecord.
func (c *Curve) Encode(w *Writer, ctx *Context) error {
	width := c.fieldWidth()
	w.WriteUint(2, 2) // edge, curved
	w.WriteUint(uint32(width-2), 4)
	w.WriteInt(c.ControlDX, width)
	w.WriteInt(c.ControlDY, width)
	w.WriteInt(c.AnchorDX, width)
	w.WriteInt(c.AnchorDY, width)
	return w.Err()
}

// decodeCurve parses a curved edge whose 6-bit header h has already been
// consumed; the low four bits of h carry the delta field width.
func decodeCurve(r *Reader, h uint32) (*Curve, error) {
	width := uint(h&0x0F) + 2
	c := &Curve{
		ControlDX: r.ReadInt(width),
		ControlDY: r.ReadInt(width),
		AnchorDX:  r.ReadInt(width),
		AnchorDY:  r.ReadInt(width),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return c, nil
}
