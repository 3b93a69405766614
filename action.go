package swf

// Action is one instruction in a script embedded in the stream. The wire
// envelope is uniform: a code byte, and for codes of 0x80 and above a
// two-byte payload length followed by the payload.
type Action interface {
	// NumBytes returns the encoded size in bytes, including the envelope.
	NumBytes() int
	// Encode writes the action.
	Encode(w *Writer) error
	// Copy returns an independent clone of the action.
	Copy() Action
}

// RawAction carries an action's envelope without interpreting the payload.
// It is the default decoding for the action category; callers wanting typed
// actions install their own factory.
type RawAction struct {
	Code uint8
	Data []byte
}

var _ Action = (*RawAction)(nil)

func (a *RawAction) NumBytes() int {
	if a.Code < 0x80 {
		return 1
	}
	return 3 + len(a.Data)
}

func (a *RawAction) Encode(w *Writer) error {
	w.WriteUint8(a.Code)
	if a.Code >= 0x80 {
		w.WriteUint16(uint16(len(a.Data)))
		w.WriteBytes(a.Data)
	}
	return w.Err()
}

func (a *RawAction) Copy() Action {
	c := &RawAction{Code: a.Code}
	if a.Data != nil {
		c.Data = append([]byte(nil), a.Data...)
	}
	return c
}

// DecodeAction is the default action factory.
func DecodeAction(r *Reader, ctx *Context) (Action, error) {
	a := &RawAction{Code: r.ReadUint8()}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if a.Code >= 0x80 {
		n := int(r.ReadUint16())
		a.Data = r.ReadBytes(n)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return a, nil
}
