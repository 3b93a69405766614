package swf

// Context carries the mutable state threaded through one decode or encode
// pass over a single shape: the field widths for fill and line style indices,
// the running bit total used while sizing, and the mode flags. A Context must
// not be shared between concurrently executing passes; use one instance per
// shape operation.
type Context struct {
	// FillWidth and LineWidth are the field widths, in bits, used for fill
	// and line style indices in style change records. On decode they are set
	// once from the shape header. On encode they must already hold the final
	// values, which PrepareToEncode computes as a side effect.
	FillWidth uint
	LineWidth uint

	// Structured selects between record-level decoding and the opaque
	// raw-bytes fallback used for shapes that must round-trip byte for byte.
	Structured bool

	// Transparent selects the four-channel color model used by style arrays
	// in newer shape definitions.
	Transparent bool

	// Registry supplies the factories used for nested objects such as fill
	// styles. When nil the package defaults are used.
	Registry *DecoderRegistry

	// shapeBits accumulates the bit length of the shape being sized; style
	// change records consult it to pad their nested style arrays to a byte
	// boundary.
	shapeBits int
}

// NewContext returns a Context configured for structured decoding.
func NewContext() *Context {
	return &Context{Structured: true}
}
