package swf

// Color is a color table entry. The alpha channel is only present on the wire
// when the context's Transparent flag is set; opaque streams carry three
// channels and decode with A = 255.
type Color struct {
	R, G, B, A uint8
}

func (c Color) numBytes(ctx *Context) int {
	if ctx.Transparent {
		return 4
	}
	return 3
}

func (c Color) encode(w *Writer, ctx *Context) {
	w.WriteUint8(c.R)
	w.WriteUint8(c.G)
	w.WriteUint8(c.B)
	if ctx.Transparent {
		w.WriteUint8(c.A)
	}
}

func decodeColor(r *Reader, ctx *Context) Color {
	c := Color{R: r.ReadUint8(), G: r.ReadUint8(), B: r.ReadUint8(), A: 255}
	if ctx.Transparent {
		c.A = r.ReadUint8()
	}
	return c
}

// decodeColorAlpha reads a four-channel color regardless of the context mode.
// Morph styles always carry alpha.
func decodeColorAlpha(r *Reader) Color {
	return Color{R: r.ReadUint8(), G: r.ReadUint8(), B: r.ReadUint8(), A: r.ReadUint8()}
}

// Fill style type bytes.
const (
	fillStyleSolid = 0x00
)

// FillStyle is an entry in a shape's fill style table. Fill styles are byte
// oriented: they begin on a byte boundary inside the otherwise bit-packed
// record stream.
type FillStyle interface {
	// NumBytes returns the encoded size in bytes.
	NumBytes(ctx *Context) int
	// Encode writes the style, starting with its type byte.
	Encode(w *Writer, ctx *Context) error
	// Copy returns an independent clone of the style.
	Copy() FillStyle
}

// SolidFill fills with a single color.
type SolidFill struct {
	Color Color
}

var _ FillStyle = (*SolidFill)(nil)

func (f *SolidFill) NumBytes(ctx *Context) int { return 1 + f.Color.numBytes(ctx) }

func (f *SolidFill) Encode(w *Writer, ctx *Context) error {
	w.WriteUint8(fillStyleSolid)
	f.Color.encode(w, ctx)
	return w.Err()
}

func (f *SolidFill) Copy() FillStyle {
	c := *f
	return &c
}

// DecodeFillStyle is the default fill style factory. It recognises solid
// fills; any other type byte fails the decode.
func DecodeFillStyle(r *Reader, ctx *Context) (FillStyle, error) {
	t := r.ReadUint8()
	if err := r.Err(); err != nil {
		return nil, err
	}
	switch t {
	case fillStyleSolid:
		f := &SolidFill{Color: decodeColor(r, ctx)}
		return f, r.Err()
	default:
		return nil, ErrUnknownFillStyle
	}
}

// MorphSolidFill is the morph counterpart of SolidFill, holding the colors at
// the start and end of the morph. Morph colors always carry alpha.
type MorphSolidFill struct {
	Start, End Color
}

var _ FillStyle = (*MorphSolidFill)(nil)

func (f *MorphSolidFill) NumBytes(ctx *Context) int { return 9 }

func (f *MorphSolidFill) Encode(w *Writer, ctx *Context) error {
	w.WriteUint8(fillStyleSolid)
	alpha := &Context{Transparent: true}
	f.Start.encode(w, alpha)
	f.End.encode(w, alpha)
	return w.Err()
}

func (f *MorphSolidFill) Copy() FillStyle {
	c := *f
	return &c
}

// DecodeMorphFillStyle is the default morph fill style factory.
func DecodeMorphFillStyle(r *Reader, ctx *Context) (FillStyle, error) {
	t := r.ReadUint8()
	if err := r.Err(); err != nil {
		return nil, err
	}
	switch t {
	case fillStyleSolid:
		f := &MorphSolidFill{Start: decodeColorAlpha(r), End: decodeColorAlpha(r)}
		return f, r.Err()
	default:
		return nil, ErrUnknownFillStyle
	}
}

// LineStyle is an entry in a shape's line style table: a stroke width in
// twips and a color.
type LineStyle struct {
	Width uint16
	Color Color
}

func (l LineStyle) numBytes(ctx *Context) int { return 2 + l.Color.numBytes(ctx) }

func (l LineStyle) encode(w *Writer, ctx *Context) {
	w.WriteUint16(l.Width)
	l.Color.encode(w, ctx)
}

func decodeLineStyle(r *Reader, ctx *Context) LineStyle {
	return LineStyle{Width: r.ReadUint16(), Color: decodeColor(r, ctx)}
}
