package swf

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCustomFactory = errors.New("custom factory")

func customFillStyle(r *Reader, ctx *Context) (FillStyle, error) {
	return nil, errCustomFactory
}

// solidFillBytes is a minimal opaque solid fill payload.
func solidFillBytes() []byte {
	return []byte{fillStyleSolid, 10, 20, 30}
}

func TestRegistryIsolation(t *testing.T) {
	a := Default()
	b := Default()
	a.SetFillStyleDecoder(customFillStyle)

	// b's slot and the stored default are unaffected by a's mutation.
	_, err := a.FillStyleDecoder()(NewReader(solidFillBytes()), NewContext())
	assert.ErrorIs(t, err, errCustomFactory)

	f, err := b.FillStyleDecoder()(NewReader(solidFillBytes()), NewContext())
	require.NoError(t, err)
	assert.Equal(t, &SolidFill{Color: Color{R: 10, G: 20, B: 30, A: 255}}, f)

	f, err = Default().FillStyleDecoder()(NewReader(solidFillBytes()), NewContext())
	require.NoError(t, err)
	assert.NotNil(t, f)
}

func TestRegistryCopy(t *testing.T) {
	a := Default()
	c := a.Copy()
	c.SetFillStyleDecoder(customFillStyle)
	c.SetShapeRecordDecoder(nil)

	_, err := a.FillStyleDecoder()(NewReader(solidFillBytes()), NewContext())
	require.NoError(t, err)
	assert.NotNil(t, a.ShapeRecordDecoder())
	assert.Nil(t, c.ShapeRecordDecoder())
}

func TestSetDefaultCopiesIn(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	custom := Default()
	custom.SetFillStyleDecoder(customFillStyle)
	SetDefault(custom)

	// Later mutation of the caller's registry must not reach the default.
	custom.SetFillStyleDecoder(DecodeFillStyle)

	_, err := Default().FillStyleDecoder()(NewReader(solidFillBytes()), NewContext())
	assert.ErrorIs(t, err, errCustomFactory)
}

func TestDefaultConcurrentReaders(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg := Default()
			reg.SetFillStyleDecoder(customFillStyle) // local copy only
			_, err := reg.FillStyleDecoder()(NewReader(solidFillBytes()), NewContext())
			assert.ErrorIs(t, err, errCustomFactory)
		}()
	}
	wg.Wait()

	_, err := Default().FillStyleDecoder()(NewReader(solidFillBytes()), NewContext())
	assert.NoError(t, err)
}

func TestShapeDecodeUsesRegistry(t *testing.T) {
	// A shape whose style change declares one fill style: the fill style
	// factory attached through the context must be the one invoked.
	shape := NewShape(
		&StyleChange{FillStyles: []FillStyle{&SolidFill{Color: Color{R: 10, G: 20, B: 30, A: 255}}}},
		&Line{DX: 5, DY: 5},
	)
	n, ectx := shape.PrepareToEncode(*NewContext())
	w := NewWriter()
	require.NoError(t, shape.Encode(w, &ectx))
	buf, err := w.Result()
	require.NoError(t, err)
	require.Len(t, buf, n)

	reg := Default()
	reg.SetFillStyleDecoder(customFillStyle)
	ctx := NewContext()
	ctx.Registry = &reg
	_, err = DecodeShape(NewReader(buf), ctx, len(buf))
	assert.ErrorIs(t, err, errCustomFactory)

	// With the stock registry the same stream decodes cleanly.
	got, err := DecodeShape(NewReader(buf), NewContext(), len(buf))
	require.NoError(t, err)
	assert.Equal(t, shape.Records(), got.Records())
}

func TestDefaultFilterFactory(t *testing.T) {
	f := &BlurFilter{BlurX: 5 << 16, BlurY: 2 << 16, Passes: 3}
	w := NewWriter()
	require.NoError(t, f.Encode(w))
	buf, err := w.Result()
	require.NoError(t, err)
	require.Len(t, buf, f.NumBytes())

	got, err := DecodeFilter(NewReader(buf), NewContext())
	require.NoError(t, err)
	assert.Equal(t, f, got)

	_, err = DecodeFilter(NewReader([]byte{0x7F}), NewContext())
	assert.ErrorIs(t, err, ErrUnknownFilter)
}

func TestDefaultActionFactory(t *testing.T) {
	for _, a := range []*RawAction{
		{Code: 0x07},
		{Code: 0x81, Data: []byte{1, 2, 3, 4}},
	} {
		w := NewWriter()
		require.NoError(t, a.Encode(w))
		buf, err := w.Result()
		require.NoError(t, err)
		require.Len(t, buf, a.NumBytes())

		got, err := DecodeAction(NewReader(buf), NewContext())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
}

func TestDefaultTagFactory(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = byte(i)
	}
	for _, tag := range []*RawTag{
		{Code: 1},
		{Code: 2, Data: []byte{1, 2, 3}},
		{Code: 39, Data: long}, // long form envelope
	} {
		w := NewWriter()
		require.NoError(t, tag.Encode(w))
		buf, err := w.Result()
		require.NoError(t, err)
		require.Len(t, buf, tag.NumBytes())

		got, err := DecodeTag(NewReader(buf), NewContext())
		require.NoError(t, err)
		assert.Equal(t, tag, got)
	}
}

func TestDefaultMorphFillFactory(t *testing.T) {
	f := &MorphSolidFill{
		Start: Color{R: 1, G: 2, B: 3, A: 4},
		End:   Color{R: 5, G: 6, B: 7, A: 8},
	}
	w := NewWriter()
	require.NoError(t, f.Encode(w, NewContext()))
	buf, err := w.Result()
	require.NoError(t, err)
	require.Len(t, buf, f.NumBytes(NewContext()))

	got, err := DecodeMorphFillStyle(NewReader(buf), NewContext())
	require.NoError(t, err)
	assert.Equal(t, f, got)
}
