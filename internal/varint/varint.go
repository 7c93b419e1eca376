// Package varint implements the base-128 variable-length integer encoding
// (LEB128 style, least-significant group first) and its zig-zag variant for
// signed integers. The wire format matches protocol buffer uint64 and sint64
// fields.
//
// Every encoded byte carries seven data bits in bits 0-6. Bit 7 is the
// continuation flag: set on every byte except the last.
//
// Values below 2^63 encode to at most 9 bytes. Values with bit 63 set need a
// tenth byte holding that single bit, so math.MaxUint64 encodes to
// ff ff ff ff ff ff ff ff ff 01 and MaxLen64 is 10. Decoding rejects a tenth
// byte that is not 0x00 or 0x01.
package varint

import (
	"encoding/hex"
	"fmt"
)

const (
	// MaxLen64 is the maximum number of bytes a 64-bit value encodes to.
	// 64 bits in 7-bit groups need ceil(64/7) = 10 bytes.
	MaxLen64 = 10

	dataMask = 0x7f
	contBit  = 0x80
)

// Encoded is an owned, fixed-capacity encoding of a single value.
type Encoded struct {
	buf [MaxLen64]byte
	n   uint8
}

// Bytes returns the encoded bytes.
func (e Encoded) Bytes() []byte {
	return e.buf[:e.n]
}

// Len returns the number of encoded bytes.
func (e Encoded) Len() int {
	return int(e.n)
}

// String returns the encoding as lowercase hex.
func (e Encoded) String() string {
	return hex.EncodeToString(e.buf[:e.n])
}

// PutUint64 encodes v into dst and returns the number of bytes written.
// dst must have room for SizeUint64(v) bytes; otherwise nothing is written
// and ErrInvalidArgument is returned.
func PutUint64(dst []byte, v uint64) (int, error) {
	if dst == nil {
		return 0, fmt.Errorf("%w: nil destination buffer", ErrInvalidArgument)
	}
	if need := SizeUint64(v); len(dst) < need {
		return 0, fmt.Errorf("%w: destination holds %d bytes, need %d", ErrInvalidArgument, len(dst), need)
	}
	return putUint64(dst, v), nil
}

// putUint64 assumes dst is large enough.
func putUint64(dst []byte, v uint64) int {
	n := 0
	for v > dataMask {
		dst[n] = byte(v&dataMask) | contBit
		v >>= 7
		n++
	}
	dst[n] = byte(v)
	return n + 1
}

// PutInt64 zig-zag encodes v into dst. Errors match PutUint64.
func PutInt64(dst []byte, v int64) (int, error) {
	return PutUint64(dst, ZigZag(v))
}

// EncodeUint64 returns the encoding of v.
func EncodeUint64(v uint64) Encoded {
	var e Encoded
	e.n = uint8(putUint64(e.buf[:], v))
	return e
}

// EncodeInt64 returns the zig-zag encoding of v.
func EncodeInt64(v int64) Encoded {
	return EncodeUint64(ZigZag(v))
}

// AppendUint64 appends the encoding of v to buf.
func AppendUint64(buf []byte, v uint64) []byte {
	for v > dataMask {
		buf = append(buf, byte(v&dataMask)|contBit)
		v >>= 7
	}
	return append(buf, byte(v))
}

// AppendInt64 appends the zig-zag encoding of v to buf.
func AppendInt64(buf []byte, v int64) []byte {
	return AppendUint64(buf, ZigZag(v))
}

// DecodeUint64 decodes a value from the start of src and returns it with the
// number of bytes consumed. Bytes after the terminating byte are ignored.
//
// A nil src yields ErrInvalidArgument. Running out of input, or reaching
// MaxLen64 bytes, without a terminating byte yields ErrIncomplete. A tenth
// byte carrying bits above bit 63 yields ErrOverflow.
func DecodeUint64(src []byte) (uint64, int, error) {
	if src == nil {
		return 0, 0, fmt.Errorf("%w: nil source buffer", ErrInvalidArgument)
	}

	var x uint64
	var shift uint
	for i := 0; i < MaxLen64; i++ {
		if i == len(src) {
			return 0, 0, &DecodeError{Offset: i, Err: ErrIncomplete}
		}
		b := src[i]
		if i == MaxLen64-1 {
			// shift is 63 here: only the lowest data bit still fits.
			if b&contBit != 0 {
				return 0, 0, &DecodeError{Offset: i, Err: ErrIncomplete}
			}
			if b > 1 {
				return 0, 0, &DecodeError{Offset: i, Err: ErrOverflow}
			}
			return x | uint64(b)<<shift, i + 1, nil
		}
		x |= uint64(b&dataMask) << shift
		if b&contBit == 0 {
			return x, i + 1, nil
		}
		shift += 7
	}
	// unreachable: the last iteration always returns
	return 0, 0, &DecodeError{Offset: MaxLen64, Err: ErrIncomplete}
}

// DecodeInt64 decodes a zig-zag encoded value from the start of src.
// Errors match DecodeUint64.
func DecodeInt64(src []byte) (int64, int, error) {
	u, n, err := DecodeUint64(src)
	if err != nil {
		return 0, 0, err
	}
	return UnZigZag(u), n, nil
}
