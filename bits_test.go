package swf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderBitOrder(t *testing.T) {
	// 0xB4 = 1011 0100: fields are packed most-significant-bit first.
	r := NewReader([]byte{0xB4, 0x01})
	assert.EqualValues(t, 0b101, r.ReadUint(3))
	assert.EqualValues(t, 0b10100, r.ReadUint(5))
	assert.EqualValues(t, 8, r.Pos())
	assert.EqualValues(t, 1, r.ReadUint8())
	require.NoError(t, r.Err())
}

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteUint(5, 3)
	w.WriteInt(-5, 7)
	w.WriteUint(0xDEADBEEF, 32)
	w.WriteInt(1, 2)
	w.WriteUint16(0xBBCC)
	w.WriteUint32(0x01020304)
	w.WriteBytes([]byte{9, 8, 7})
	buf, err := w.Result()
	require.NoError(t, err)

	r := NewReader(buf)
	assert.EqualValues(t, 5, r.ReadUint(3))
	assert.EqualValues(t, -5, r.ReadInt(7))
	assert.EqualValues(t, 0xDEADBEEF, r.ReadUint(32))
	assert.EqualValues(t, 1, r.ReadInt(2))
	assert.EqualValues(t, 0xBBCC, r.ReadUint16())
	assert.EqualValues(t, 0x01020304, r.ReadUint32())
	assert.Equal(t, []byte{9, 8, 7}, r.ReadBytes(3))
	require.NoError(t, r.Err())
}

func TestSignedFields(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 2, -2, 127, -128, 1 << 20, -(1 << 20)} {
		width := SignedBits(v)
		w := NewWriter()
		w.WriteInt(v, width)
		r := NewReader(w.Bytes())
		assert.Equal(t, v, r.ReadInt(width), "value %d width %d", v, width)
		require.NoError(t, r.Err())
	}
}

func TestAlignToByteIdempotent(t *testing.T) {
	w := NewWriter()
	w.WriteUint(1, 1)
	w.AlignToByte()
	assert.Equal(t, 8, w.Pos())
	w.AlignToByte()
	assert.Equal(t, 8, w.Pos())
	assert.Equal(t, []byte{0x80}, w.Bytes())

	r := NewReader([]byte{0x80, 0xFF})
	r.ReadUint(1)
	r.AlignToByte()
	assert.Equal(t, 8, r.Pos())
	r.AlignToByte()
	assert.Equal(t, 8, r.Pos())
	require.NoError(t, r.Err())
}

func TestReaderRewind(t *testing.T) {
	r := NewReader([]byte{0xB4})
	first := r.ReadUint(6)
	r.Rewind(6)
	assert.Equal(t, 0, r.Pos())
	assert.Equal(t, first, r.ReadUint(6))
	require.NoError(t, r.Err())

	r.Rewind(100)
	assert.ErrorIs(t, r.Err(), ErrInvalidRewind)
}

func TestReaderTruncation(t *testing.T) {
	r := NewReader([]byte{0xFF})
	r.ReadUint(6)
	r.ReadUint(6)
	assert.ErrorIs(t, r.Err(), ErrTruncatedData)
}

func TestReaderLatchesFirstError(t *testing.T) {
	r := NewReader([]byte{0xAB})
	r.ReadUint(16) // fails: only 8 bits available
	firstErr := r.Err()
	require.ErrorIs(t, firstErr, ErrTruncatedData)

	// Subsequent reads are no-ops and do not disturb the latched error.
	assert.Zero(t, r.ReadUint(4))
	assert.Zero(t, r.ReadUint8())
	assert.Equal(t, firstErr, r.Err())
}

func TestBitWidthRange(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})
	r.ReadUint(33)
	assert.ErrorIs(t, r.Err(), ErrBitWidth)

	w := NewWriter()
	w.WriteUint(0, 33)
	assert.ErrorIs(t, w.Err(), ErrBitWidth)
}

func TestUnsignedBits(t *testing.T) {
	assert.EqualValues(t, 0, UnsignedBits(0))
	assert.EqualValues(t, 1, UnsignedBits(1))
	assert.EqualValues(t, 2, UnsignedBits(3))
	assert.EqualValues(t, 3, UnsignedBits(4))
	assert.EqualValues(t, 8, UnsignedBits(255))
}
