package swf

// StyleChange record flag bits, occupying the low five bits of the 6-bit
// header (the top bit, the edge flag, is zero).
const (
	styleFlagNewStyles = 0x10
	styleFlagLineStyle = 0x08
	styleFlagAltFill   = 0x04
	styleFlagFill      = 0x02
	styleFlagMove      = 0x01
)

// StyleChange is a non-edge shape record. It can move the drawing point,
// select the fill styles applied to either side of the path, select the line
// style, and replace the style tables. Absent fields are nil. When new style
// tables are present, encoding the record changes the index field widths used
// by every following record in the shape.
type StyleChange struct {
	// MoveX and MoveY are a relative move of the drawing point. Both must be
	// set together.
	MoveX, MoveY *int32

	// FillStyle and AltFillStyle index the fill style table for the two
	// sides of the path; LineStyle indexes the line style table. Index zero
	// means no style.
	FillStyle    *uint32
	AltFillStyle *uint32
	LineStyle    *uint32

	// FillStyles and LineStyles, when non-empty, replace the shape's style
	// tables from this record onward.
	FillStyles []FillStyle
	LineStyles []LineStyle
}

var _ ShapeRecord = (*StyleChange)(nil)

func (s *StyleChange) Kind() RecordKind { return KindStyleChange }

func (s *StyleChange) sealed() {}

// Copy returns an independent deep clone: optional fields and every style
// table entry are cloned, not shared.
func (s *StyleChange) Copy() ShapeRecord {
	c := &StyleChange{}
	if s.hasMove() {
		c.MoveX, c.MoveY = Ptr(*s.MoveX), Ptr(*s.MoveY)
	}
	if s.FillStyle != nil {
		c.FillStyle = Ptr(*s.FillStyle)
	}
	if s.AltFillStyle != nil {
		c.AltFillStyle = Ptr(*s.AltFillStyle)
	}
	if s.LineStyle != nil {
		c.LineStyle = Ptr(*s.LineStyle)
	}
	if s.FillStyles != nil {
		c.FillStyles = make([]FillStyle, len(s.FillStyles))
		for i, f := range s.FillStyles {
			c.FillStyles[i] = f.Copy()
		}
	}
	if s.LineStyles != nil {
		c.LineStyles = append([]LineStyle(nil), s.LineStyles...)
	}
	return c
}

func (s *StyleChange) hasMove() bool { return s.MoveX != nil && s.MoveY != nil }

func (s *StyleChange) hasStyles() bool {
	return len(s.FillStyles) > 0 || len(s.LineStyles) > 0
}

func (s *StyleChange) moveFieldWidth() uint {
	return maxSignedBits(1, *s.MoveX, *s.MoveY)
}

func (s *StyleChange) flags() uint32 {
	var f uint32
	if s.hasStyles() {
		f |= styleFlagNewStyles
	}
	if s.LineStyle != nil {
		f |= styleFlagLineStyle
	}
	if s.AltFillStyle != nil {
		f |= styleFlagAltFill
	}
	if s.FillStyle != nil {
		f |= styleFlagFill
	}
	if s.hasMove() {
		f |= styleFlagMove
	}
	return f
}

// styleCountBytes returns the encoded size of a style table count: one byte,
// or three in the extended form used once the count reaches the escape value.
func styleCountBytes(n int) int {
	if n >= 0xFF {
		return 3
	}
	return 1
}

func writeStyleCount(w *Writer, n int) {
	if n >= 0xFF {
		w.WriteUint8(0xFF)
		w.WriteUint16(uint16(n))
		return
	}
	w.WriteUint8(uint8(n))
}

func readStyleCount(r *Reader) int {
	n := int(r.ReadUint8())
	if n == 0xFF {
		n = int(r.ReadUint16())
	}
	return n
}

// NumBits implements ShapeRecord. When the record carries new style tables it
// also pads to the byte boundary the tables will start on (computed from the
// context's running bit total) and updates the context's index field widths
// for the records that follow.
func (s *StyleChange) NumBits(ctx *Context) int {
	n := headerBits
	if s.hasMove() {
		n += 5 + 2*int(s.moveFieldWidth())
	}
	if s.FillStyle != nil {
		n += int(ctx.FillWidth)
	}
	if s.AltFillStyle != nil {
		n += int(ctx.FillWidth)
	}
	if s.LineStyle != nil {
		n += int(ctx.LineWidth)
	}
	if s.hasStyles() {
		total := ctx.shapeBits + n
		n += Roundup(total, 8) - total

		styleBytes := styleCountBytes(len(s.FillStyles))
		for _, f := range s.FillStyles {
			styleBytes += f.NumBytes(ctx)
		}
		styleBytes += styleCountBytes(len(s.LineStyles))
		for _, l := range s.LineStyles {
			styleBytes += l.numBytes(ctx)
		}
		n += 8 * styleBytes

		n += 8 // trailing fill and line width nibbles

		ctx.FillWidth = UnsignedBits(uint32(len(s.FillStyles)))
		ctx.LineWidth = UnsignedBits(uint32(len(s.LineStyles)))
	}
	ctx.shapeBits += n
	return n
}

// Encode implements ShapeRecord.
func (s *StyleChange) Encode(w *Writer, ctx *Context) error {
	w.WriteUint(s.flags(), headerBits)
	if s.hasMove() {
		width := s.moveFieldWidth()
		w.WriteUint(uint32(width), 5)
		w.WriteInt(*s.MoveX, width)
		w.WriteInt(*s.MoveY, width)
	}
	if s.FillStyle != nil {
		w.WriteUint(*s.FillStyle, ctx.FillWidth)
	}
	if s.AltFillStyle != nil {
		w.WriteUint(*s.AltFillStyle, ctx.FillWidth)
	}
	if s.LineStyle != nil {
		w.WriteUint(*s.LineStyle, ctx.LineWidth)
	}
	if s.hasStyles() {
		w.AlignToByte()
		writeStyleCount(w, len(s.FillStyles))
		for _, f := range s.FillStyles {
			if err := f.Encode(w, ctx); err != nil {
				return err
			}
		}
		writeStyleCount(w, len(s.LineStyles))
		for _, l := range s.LineStyles {
			l.encode(w, ctx)
		}
		ctx.FillWidth = UnsignedBits(uint32(len(s.FillStyles)))
		ctx.LineWidth = UnsignedBits(uint32(len(s.LineStyles)))
		w.WriteUint(uint32(ctx.FillWidth), 4)
		w.WriteUint(uint32(ctx.LineWidth), 4)
	}
	return w.Err()
}

// decodeStyleChange parses a style change whose 6-bit header h has already
// been consumed; the low five bits of h are the field flags.
func decodeStyleChange(r *Reader, h uint32, ctx *Context) (*StyleChange, error) {
	s := &StyleChange{}
	if h&styleFlagMove != 0 {
		width := uint(r.ReadUint(5))
		s.MoveX = Ptr(r.ReadInt(width))
		s.MoveY = Ptr(r.ReadInt(width))
	}
	if h&styleFlagFill != 0 {
		s.FillStyle = Ptr(r.ReadUint(ctx.FillWidth))
	}
	if h&styleFlagAltFill != 0 {
		s.AltFillStyle = Ptr(r.ReadUint(ctx.FillWidth))
	}
	if h&styleFlagLineStyle != 0 {
		s.LineStyle = Ptr(r.ReadUint(ctx.LineWidth))
	}
	if h&styleFlagNewStyles != 0 {
		r.AlignToByte()

		decode := ctx.fillStyleFactory()
		n := readStyleCount(r)
		if err := r.Err(); err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			f, err := decode(r, ctx)
			if err != nil {
				return nil, err
			}
			s.FillStyles = append(s.FillStyles, f)
		}

		n = readStyleCount(r)
		if err := r.Err(); err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			s.LineStyles = append(s.LineStyles, decodeLineStyle(r, ctx))
		}

		ctx.FillWidth = uint(r.ReadUint(4))
		ctx.LineWidth = uint(r.ReadUint(4))
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
