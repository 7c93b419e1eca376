package varint

import "math/bits"

// ZigZag maps a signed value to an unsigned one so that values of small
// magnitude stay small: 0 -> 0, -1 -> 1, 1 -> 2, -2 -> 3, 2 -> 4.
func ZigZag(v int64) uint64 {
	// v>>63 is an arithmetic shift: all ones for negative v.
	return uint64(v<<1) ^ uint64(v>>63)
}

// UnZigZag reverses ZigZag.
func UnZigZag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// SizeUint64 returns the number of bytes EncodeUint64(v) produces.
func SizeUint64(v uint64) int {
	// v|1 makes zero count as one significant bit.
	return (bits.Len64(v|1) + 6) / 7
}

// SizeInt64 returns the number of bytes EncodeInt64(v) produces.
func SizeInt64(v int64) int {
	return SizeUint64(ZigZag(v))
}
