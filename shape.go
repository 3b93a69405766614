package swf

// Shape is an ordered sequence of shape records describing one drawable
// outline. The sequence order is the drawing order. A shape decoded in
// non-structured mode instead holds a single opaque byte payload and is not
// manipulable record by record.
//
// Encoding is a two-pass protocol: PrepareToEncode sizes the shape and
// finalizes the context's index field widths, then Encode emits the bits
// against that finalized context. Shapes start and end on byte boundaries.
type Shape struct {
	records []ShapeRecord
	raw     []byte
}

// NewShape creates a shape from the given records, in drawing order.
func NewShape(records ...ShapeRecord) *Shape {
	return &Shape{records: records}
}

// NewRawShape creates a shape holding an opaque byte payload. Raw shapes
// round-trip byte for byte; they exist for streams whose record content must
// not be reinterpreted.
func NewRawShape(data []byte) *Shape {
	if data == nil {
		data = []byte{}
	}
	return &Shape{raw: data}
}

// DecodeShape decodes one shape. In structured mode it reads the two 4-bit
// index field widths into ctx, decodes records until the end-of-shape marker,
// and realigns the cursor to the next byte boundary. In non-structured mode
// it captures length bytes verbatim. A record that cannot be read aborts the
// whole decode.
func DecodeShape(r *Reader, ctx *Context, length int) (*Shape, error) {
	s := &Shape{}
	if !ctx.Structured {
		s.raw = r.ReadBytes(length)
		if err := r.Err(); err != nil {
			return nil, err
		}
		if s.raw == nil {
			s.raw = []byte{} // zero-length shapes still decode as raw
		}
		return s, nil
	}

	ctx.FillWidth = uint(r.ReadUint(4))
	ctx.LineWidth = uint(r.ReadUint(4))

	decode := ctx.shapeRecordFactory()
	for {
		rec, err := decode(r, ctx)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			break
		}
		s.records = append(s.records, rec)
	}

	r.AlignToByte()
	if err := r.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// IsRaw reports whether the shape holds an opaque byte payload.
func (s *Shape) IsRaw() bool { return s.raw != nil }

// Raw returns the opaque payload of a raw shape, or nil for a structured one.
func (s *Shape) Raw() []byte { return s.raw }

// Records returns the shape's record sequence in drawing order.
func (s *Shape) Records() []ShapeRecord { return s.records }

// Add appends a record to the sequence.
func (s *Shape) Add(rec ShapeRecord) error {
	if rec == nil {
		return ErrNilRecord
	}
	if s.raw != nil {
		return ErrRawShape
	}
	s.records = append(s.records, rec)
	return nil
}

// SetRecords replaces the record sequence. The slice must not be nil.
func (s *Shape) SetRecords(records []ShapeRecord) error {
	if records == nil {
		return ErrNilRecords
	}
	if s.raw != nil {
		return ErrRawShape
	}
	s.records = records
	return nil
}

// Copy returns a deep clone: every record is cloned, not shared.
func (s *Shape) Copy() *Shape {
	c := &Shape{}
	if s.raw != nil {
		c.raw = append([]byte{}, s.raw...)
		return c
	}
	if s.records != nil {
		c.records = make([]ShapeRecord, len(s.records))
		for i, rec := range s.records {
			c.records[i] = rec.Copy()
		}
	}
	return c
}

// PrepareToEncode is the sizing pass. It resets the context's bit total,
// reserves the 8-bit width header, sums the bit length of every record in
// order, adds the 6-bit end-of-shape marker, and rounds up to whole bytes.
// Style change records that introduce new style tables update the returned
// context's index field widths as a side effect; Encode's header write
// depends on those final widths, so the returned context is the one to
// encode with. Sizing an unmodified shape twice returns the same count. For
// a raw shape the payload length is returned and ctx is passed through.
func (s *Shape) PrepareToEncode(ctx Context) (int, Context) {
	if s.raw != nil {
		return len(s.raw), ctx
	}
	ctx.shapeBits = 8 // fill and line width nibbles
	total := 8
	for _, rec := range s.records {
		total += rec.NumBits(&ctx)
	}
	total += headerBits // end-of-shape marker
	return Roundup(total, 8) / 8, ctx
}

// Encode is the emission pass. It writes the finalized index field widths as
// two 4-bit fields, each record in order, the 6-bit end-of-shape marker, and
// pads to the next byte boundary. The context must come from PrepareToEncode.
// Encoding a raw shape requires a non-structured context, and vice versa.
func (s *Shape) Encode(w *Writer, ctx *Context) error {
	if s.raw != nil {
		if ctx.Structured {
			return ErrRawShape
		}
		w.WriteBytes(s.raw)
		return w.Err()
	}
	if !ctx.Structured {
		return ErrNotRawShape
	}

	w.WriteUint(uint32(ctx.FillWidth), 4)
	w.WriteUint(uint32(ctx.LineWidth), 4)
	for _, rec := range s.records {
		if err := rec.Encode(w, ctx); err != nil {
			return err
		}
	}
	w.WriteUint(0, headerBits)
	w.AlignToByte()
	return w.Err()
}
