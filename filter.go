package swf

// Filter id bytes.
const (
	filterBlur = 0x01
)

// Filter is a rendering filter attached to a placed object. Filters are byte
// oriented, each starting with an id byte.
type Filter interface {
	// NumBytes returns the encoded size in bytes, including the id byte.
	NumBytes() int
	// Encode writes the filter, starting with its id byte.
	Encode(w *Writer) error
	// Copy returns an independent clone of the filter.
	Copy() Filter
}

// BlurFilter is a box blur. BlurX and BlurY are 16.16 fixed-point blur
// amounts; Passes is the number of blur passes (0-31).
type BlurFilter struct {
	BlurX, BlurY uint32
	Passes       uint8
}

var _ Filter = (*BlurFilter)(nil)

func (f *BlurFilter) NumBytes() int { return 10 }

func (f *BlurFilter) Encode(w *Writer) error {
	w.WriteUint8(filterBlur)
	w.WriteUint32(f.BlurX)
	w.WriteUint32(f.BlurY)
	w.WriteUint(uint32(f.Passes), 5)
	w.WriteUint(0, 3) // reserved
	return w.Err()
}

func (f *BlurFilter) Copy() Filter {
	c := *f
	return &c
}

// DecodeFilter is the default filter factory. It recognises blur filters; any
// other id byte fails the decode.
func DecodeFilter(r *Reader, ctx *Context) (Filter, error) {
	id := r.ReadUint8()
	if err := r.Err(); err != nil {
		return nil, err
	}
	switch id {
	case filterBlur:
		f := &BlurFilter{
			BlurX:  r.ReadUint32(),
			BlurY:  r.ReadUint32(),
			Passes: uint8(r.ReadUint(5)),
		}
		r.ReadUint(3) // reserved
		return f, r.Err()
	default:
		return nil, ErrUnknownFilter
	}
}
