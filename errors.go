package swf

import "errors"

var (
	// ErrTruncatedData indicates that a read could not complete because the
	// underlying buffer ended before all requested bits were available.
	ErrTruncatedData = errors.New("swf: truncated data")

	// ErrBitWidth indicates a bit-level read or write was requested with a
	// width outside the supported 0-32 bit range.
	ErrBitWidth = errors.New("swf: bit width out of range")

	// ErrInvalidRewind indicates a Rewind past the start of the buffer or by
	// a negative bit count.
	ErrInvalidRewind = errors.New("swf: rewind to invalid position")

	// ErrNilRecords indicates SetRecords was called with a nil slice.
	ErrNilRecords = errors.New("swf: record list cannot be nil")

	// ErrNilRecord indicates Add was called with a nil record.
	ErrNilRecord = errors.New("swf: record cannot be nil")

	// ErrRawShape indicates a record-level operation was attempted on a shape
	// holding an opaque byte payload.
	ErrRawShape = errors.New("swf: shape holds raw bytes, not records")

	// ErrNotRawShape indicates a raw-bytes operation was attempted on a shape
	// holding structured records.
	ErrNotRawShape = errors.New("swf: shape holds records, not raw bytes")

	// ErrUnknownFillStyle indicates a fill style type byte the installed
	// factory does not recognise.
	ErrUnknownFillStyle = errors.New("swf: unknown fill style type")

	// ErrUnknownFilter indicates a filter id byte the installed factory does
	// not recognise.
	ErrUnknownFilter = errors.New("swf: unknown filter id")
)
