package compression

import (
	"fmt"

	"github.com/soltixdb/varint/internal/varint"
)

// UintSequence encodes []uint64 as a varint count followed by one varint per value
type UintSequence struct{}

func NewUintSequence() *UintSequence {
	return &UintSequence{}
}

func (s *UintSequence) Encode(values []uint64) []byte {
	size := varint.SizeUint64(uint64(len(values)))
	for _, v := range values {
		size += varint.SizeUint64(v)
	}

	buf := make([]byte, 0, size)
	buf = varint.AppendUint64(buf, uint64(len(values)))
	for _, v := range values {
		buf = varint.AppendUint64(buf, v)
	}
	return buf
}

func (s *UintSequence) Decode(data []byte) ([]uint64, error) {
	count, offset, err := readCount(data)
	if err != nil {
		return nil, err
	}

	values := make([]uint64, count)
	for i := range values {
		v, n, err := varint.DecodeUint64(data[offset:])
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = v
		offset += n
	}

	if offset != len(data) {
		return nil, fmt.Errorf("%d trailing bytes after %d values", len(data)-offset, count)
	}
	return values, nil
}

// DeltaEncoder implements delta + zigzag + varint compression for int64 values
// Efficient for monotonically increasing values like timestamps
type DeltaEncoder struct{}

func NewDeltaEncoder() *DeltaEncoder {
	return &DeltaEncoder{}
}

// Encode writes the count, the first value, then each difference from its
// predecessor. Differences wrap on overflow and Decode wraps them back.
func (e *DeltaEncoder) Encode(values []int64) []byte {
	buf := make([]byte, 0, varint.MaxLen64+len(values)*2)
	buf = varint.AppendUint64(buf, uint64(len(values)))

	var prev int64
	for _, v := range values {
		buf = varint.AppendInt64(buf, v-prev)
		prev = v
	}
	return buf
}

func (e *DeltaEncoder) Decode(data []byte) ([]int64, error) {
	count, offset, err := readCount(data)
	if err != nil {
		return nil, err
	}

	values := make([]int64, count)
	var prev int64
	for i := range values {
		delta, n, err := varint.DecodeInt64(data[offset:])
		if err != nil {
			return nil, fmt.Errorf("failed to read varint at position %d: %w", i, err)
		}
		offset += n

		prev += delta
		values[i] = prev
	}

	if offset != len(data) {
		return nil, fmt.Errorf("%d trailing bytes after %d values", len(data)-offset, count)
	}
	return values, nil
}

// readCount reads the leading element count. Every element takes at least
// one byte, so a count larger than the remaining input is rejected before
// allocating.
func readCount(data []byte) (int, int, error) {
	if data == nil {
		data = []byte{}
	}

	count, n, err := varint.DecodeUint64(data)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read count: %w", err)
	}
	if count > uint64(len(data)-n) {
		return 0, 0, fmt.Errorf("count %d exceeds remaining %d bytes: %w", count, len(data)-n, varint.ErrIncomplete)
	}
	return int(count), n, nil
}

// MaxEncodedSize returns the largest encoded sequence holding count values:
// the count itself plus count varints, each at most varint.MaxLen64 bytes.
func MaxEncodedSize(count int) int {
	return (count + 1) * varint.MaxLen64
}
