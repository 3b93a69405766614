package swf

import "fmt"

// Record type flags in the 6-bit record header. Bit 5 separates edge records
// from style changes; bit 4 separates straight from curved edges.
const (
	headerEdge     = 0x20
	headerStraight = 0x10
	headerBits     = 6
)

// RecordKind identifies which shape record variant a 6-bit header announces.
type RecordKind uint8

const (
	KindEndOfShape RecordKind = iota
	KindStyleChange
	KindStraightEdge
	KindCurvedEdge
)

func (k RecordKind) String() string {
	switch k {
	case KindEndOfShape:
		return "EndOfShape"
	case KindStyleChange:
		return "StyleChange"
	case KindStraightEdge:
		return "StraightEdge"
	case KindCurvedEdge:
		return "CurvedEdge"
	default:
		return fmt.Sprintf("RecordKind(%d)", uint8(k))
	}
}

// ClassifyHeader maps a 6-bit record header to its record kind. Every value
// 0-63 is classified: zero is the end-of-shape marker, both type flags set is
// a straight edge, the edge flag alone is a curved edge, and everything else
// is a style change.
func ClassifyHeader(h uint32) RecordKind {
	switch {
	case h == 0:
		return KindEndOfShape
	case h&headerEdge != 0 && h&headerStraight != 0:
		return KindStraightEdge
	case h&headerEdge != 0:
		return KindCurvedEdge
	default:
		return KindStyleChange
	}
}

// ShapeRecord is one element of a shape's drawing sequence: a StyleChange, a
// Line, or a Curve. The end-of-shape marker is a protocol signal, not a
// record, and never appears in a sequence. The set of implementations is
// closed.
type ShapeRecord interface {
	// Kind reports the record's variant.
	Kind() RecordKind

	// NumBits returns the number of bits the record will occupy when encoded
	// against ctx, and adds that count to the context's running total. A
	// StyleChange carrying new style arrays also updates the context's index
	// field widths, which changes the size of every following record.
	NumBits(ctx *Context) int

	// Encode writes the record against the already-finalized context.
	Encode(w *Writer, ctx *Context) error

	// Copy returns an independent deep clone of the record.
	Copy() ShapeRecord

	sealed()
}

// DecodeShapeRecord decodes a single shape record. It reads the 6-bit header
// once, classifies it, and hands the header value to exactly one variant
// parser; the parser extracts its remaining header fields from the already
// read value rather than re-reading the stream. The end-of-shape marker is
// reported as a nil record with a nil error.
func DecodeShapeRecord(r *Reader, ctx *Context) (ShapeRecord, error) {
	h := r.ReadUint(headerBits)
	if err := r.Err(); err != nil {
		return nil, err
	}
	switch ClassifyHeader(h) {
	case KindEndOfShape:
		return nil, nil
	case KindStraightEdge:
		return decodeLine(r, h)
	case KindCurvedEdge:
		return decodeCurve(r, h)
	case KindStyleChange:
		return decodeStyleChange(r, h, ctx)
	default:
		panic("swf: unreachable record kind")
	}
}
