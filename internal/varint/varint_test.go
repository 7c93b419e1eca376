package varint

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Unsigned Basic Tests
// =============================================================================

func TestEncodeUint64(t *testing.T) {
	tests := []struct {
		name     string
		value    uint64
		expected []byte
	}{
		{"Zero", 0, []byte{0x00}},
		{"One", 1, []byte{0x01}},
		{"127", 127, []byte{0x7f}},
		{"128", 128, []byte{0x80, 0x01}},
		{"300", 300, []byte{0xac, 0x02}},
		{"16383", 16383, []byte{0xff, 0x7f}},
		{"16384", 16384, []byte{0x80, 0x80, 0x01}},
		{"MaxUint64", math.MaxUint64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := EncodeUint64(tt.value)
			assert.Equal(t, tt.expected, e.Bytes())
			assert.Equal(t, len(tt.expected), e.Len())
			assert.Equal(t, tt.expected, AppendUint64(nil, tt.value))

			var buf [MaxLen64]byte
			n, err := PutUint64(buf[:], tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf[:n])
		})
	}
}

func TestDecodeUint64(t *testing.T) {
	tests := []struct {
		name         string
		data         []byte
		expectedVal  uint64
		expectedSize int
	}{
		{"Zero", []byte{0x00}, 0, 1},
		{"127", []byte{0x7f}, 127, 1},
		{"128", []byte{0x80, 0x01}, 128, 2},
		{"300", []byte{0xac, 0x02}, 300, 2},
		{"16384", []byte{0x80, 0x80, 0x01}, 16384, 3},
		{"TrailingBytesIgnored", []byte{0xac, 0x02, 0xff, 0xff}, 300, 2},
		{"NonMinimalAccepted", []byte{0x80, 0x00}, 0, 2},
		{"MaxUint64", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, math.MaxUint64, 10},
		{"Bit63Only", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}, 1 << 63, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, n, err := DecodeUint64(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedVal, val)
			assert.Equal(t, tt.expectedSize, n)
		})
	}
}

func TestUint64Roundtrip(t *testing.T) {
	values := []uint64{
		0, 1, 127, 128, 255, 256, 16383, 16384, 2097151, 2097152,
		1 << 28, 1 << 35, 1 << 42, 1 << 49, 1 << 56, 1<<56 - 1, 1 << 63,
		math.MaxUint32, math.MaxUint64 - 1, math.MaxUint64,
	}

	for _, v := range values {
		e := EncodeUint64(v)
		decoded, n, err := DecodeUint64(e.Bytes())
		require.NoError(t, err, "value %d", v)
		assert.Equal(t, v, decoded)
		assert.Equal(t, e.Len(), n)
	}
}

func TestUint64Roundtrip_EveryBitLength(t *testing.T) {
	for bitsLen := 0; bitsLen <= 64; bitsLen++ {
		var v uint64
		if bitsLen > 0 {
			v = math.MaxUint64 >> (64 - bitsLen)
		}
		e := EncodeUint64(v)

		want := (bitsLen + 6) / 7
		if want == 0 {
			want = 1
		}
		assert.Equal(t, want, e.Len(), "bit length %d", bitsLen)
		assert.Equal(t, want, SizeUint64(v), "bit length %d", bitsLen)

		decoded, n, err := DecodeUint64(e.Bytes())
		require.NoError(t, err)
		assert.Equal(t, v, decoded)
		assert.Equal(t, want, n)
	}
}

func TestEncode_ContinuationBits(t *testing.T) {
	for _, v := range []uint64{0, 127, 128, 300, 1 << 40, math.MaxUint64} {
		b := EncodeUint64(v).Bytes()
		for i := 0; i < len(b)-1; i++ {
			assert.NotZero(t, b[i]&0x80, "value %d byte %d should have continuation bit", v, i)
		}
		assert.Zero(t, b[len(b)-1]&0x80, "value %d last byte should not have continuation bit", v)
	}
}

// =============================================================================
// Signed Zig-Zag Tests
// =============================================================================

func TestEncodeInt64(t *testing.T) {
	tests := []struct {
		value    int64
		expected []byte
	}{
		{0, []byte{0x00}},
		{-1, []byte{0x01}},
		{1, []byte{0x02}},
		{-2, []byte{0x03}},
		{2, []byte{0x04}},
		{-64, []byte{0x7f}},
		{64, []byte{0x80, 0x01}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, EncodeInt64(tt.value).Bytes(), "value %d", tt.value)
		assert.Equal(t, tt.expected, AppendInt64(nil, tt.value), "value %d", tt.value)
	}
}

func TestInt64Roundtrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 2, -2, 63, -64, 64, -65, -2232334,
		math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64,
	}

	for _, v := range values {
		var buf [MaxLen64]byte
		n, err := PutInt64(buf[:], v)
		require.NoError(t, err)
		assert.Equal(t, SizeInt64(v), n)

		decoded, consumed, err := DecodeInt64(buf[:n])
		require.NoError(t, err, "value %d", v)
		assert.Equal(t, v, decoded)
		assert.Equal(t, n, consumed)
	}
}

func TestZigZag(t *testing.T) {
	mapping := map[int64]uint64{
		0:             0,
		-1:            1,
		1:             2,
		-2:            3,
		2:             4,
		math.MaxInt64: math.MaxUint64 - 1,
		math.MinInt64: math.MaxUint64,
	}
	for s, u := range mapping {
		assert.Equal(t, u, ZigZag(s), "ZigZag(%d)", s)
		assert.Equal(t, s, UnZigZag(u), "UnZigZag(%d)", u)
	}
}

// =============================================================================
// Error conditions
// =============================================================================

func TestPutUint64_InvalidArgument(t *testing.T) {
	n, err := PutUint64(nil, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Zero(t, n)

	_, err = PutInt64(nil, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPutUint64_ShortBufferWritesNothing(t *testing.T) {
	buf := []byte{0xee, 0xee}
	n, err := PutUint64(buf, 1<<14)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Zero(t, n)
	assert.Equal(t, []byte{0xee, 0xee}, buf)
}

func TestDecode_NilSource(t *testing.T) {
	_, _, err := DecodeUint64(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, _, err = DecodeInt64(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDecode_Incomplete(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"Empty", []byte{}},
		{"SingleContinuation", []byte{0x80}},
		{"NineContinuationBytes", []byte{0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87, 0xff}},
		{"TenContinuationBytes", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, n, err := DecodeUint64(tt.data)
			assert.ErrorIs(t, err, ErrIncomplete)
			assert.False(t, errors.Is(err, ErrInvalidArgument))
			assert.Zero(t, val)
			assert.Zero(t, n)

			_, _, err = DecodeInt64(tt.data)
			assert.ErrorIs(t, err, ErrIncomplete)
		})
	}
}

func TestDecode_Overflow(t *testing.T) {
	data := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}
	_, _, err := DecodeUint64(data)
	assert.ErrorIs(t, err, ErrOverflow)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, 9, decErr.Offset)
}

func TestDecodeError_Message(t *testing.T) {
	_, _, err := DecodeUint64([]byte{0x80, 0x80})
	require.Error(t, err)
	assert.Equal(t, "varint: incomplete varint at byte 2", err.Error())
}

func TestEncoded_String(t *testing.T) {
	assert.Equal(t, "ac02", EncodeUint64(300).String())
	assert.Equal(t, "03", EncodeInt64(-2).String())
}

func TestAppend_MultipleInSequence(t *testing.T) {
	buf := []byte("prefix")
	values := []int64{0, -1, 300, math.MinInt64, 1 << 40}
	for _, v := range values {
		buf = AppendInt64(buf, v)
	}
	require.Equal(t, "prefix", string(buf[:6]))

	offset := 6
	for _, expected := range values {
		val, n, err := DecodeInt64(buf[offset:])
		require.NoError(t, err)
		assert.Equal(t, expected, val)
		offset += n
	}
	assert.Equal(t, len(buf), offset)
}
