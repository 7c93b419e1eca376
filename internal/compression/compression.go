package compression

import (
	"errors"
	"fmt"
	"strings"

	"github.com/soltixdb/varint/internal/varint"
)

var (
	// ErrBlockTooLarge is returned when a block declares more raw bytes than allowed
	ErrBlockTooLarge = errors.New("block exceeds size limit")

	// ErrLengthMismatch is returned when the payload disagrees with the block header
	ErrLengthMismatch = errors.New("block length mismatch")
)

// Algorithm defines compression types
type Algorithm uint8

const (
	None   Algorithm = 0
	Snappy Algorithm = 1
)

// String returns the configuration name of the algorithm
func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Snappy:
		return "snappy"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm maps a configuration name to an Algorithm
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return None, nil
	case "snappy":
		return Snappy, nil
	default:
		return None, fmt.Errorf("unsupported compression algorithm: %q", name)
	}
}

// Compressor interface for compression algorithms
type Compressor interface {
	// Compress compresses data
	Compress(data []byte) ([]byte, error)

	// Decompress decompresses data
	Decompress(data []byte) ([]byte, error)

	// Algorithm returns the compression algorithm type
	Algorithm() Algorithm
}

// GetCompressor returns a compressor for the given algorithm
func GetCompressor(algo Algorithm) (Compressor, error) {
	switch algo {
	case None:
		return &NoneCompressor{}, nil
	case Snappy:
		return NewSnappyCompressor(), nil
	default:
		return nil, fmt.Errorf("unsupported compression algorithm: %d", algo)
	}
}

// NoneCompressor is a no-op compressor
type NoneCompressor struct{}

func (n *NoneCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (n *NoneCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

func (n *NoneCompressor) Algorithm() Algorithm {
	return None
}

// DecodedLen is the payload length itself
func (n *NoneCompressor) DecodedLen(data []byte) (int, error) {
	return len(data), nil
}

// decodedLener is implemented by compressors that can report the
// decompressed size without decompressing.
type decodedLener interface {
	DecodedLen(data []byte) (int, error)
}

// Pack wraps payload in a block: one algorithm byte, the uncompressed length
// as a varint, then the compressed payload.
func Pack(algo Algorithm, payload []byte) ([]byte, error) {
	c, err := GetCompressor(algo)
	if err != nil {
		return nil, err
	}

	compressed, err := c.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("pack: %w", err)
	}

	block := make([]byte, 0, 1+varint.MaxLen64+len(compressed))
	block = append(block, byte(algo))
	block = varint.AppendUint64(block, uint64(len(payload)))
	return append(block, compressed...), nil
}

// Unpack reverses Pack. Blocks declaring more than maxLen raw bytes are
// refused before anything is decompressed; maxLen <= 0 disables the limit.
func Unpack(block []byte, maxLen int) ([]byte, error) {
	if len(block) == 0 {
		return nil, fmt.Errorf("unpack: empty block")
	}

	c, err := GetCompressor(Algorithm(block[0]))
	if err != nil {
		return nil, fmt.Errorf("unpack: %w", err)
	}

	rawLen, n, err := varint.DecodeUint64(block[1:])
	if err != nil {
		return nil, fmt.Errorf("unpack: block length: %w", err)
	}
	if maxLen > 0 && rawLen > uint64(maxLen) {
		return nil, fmt.Errorf("unpack: %w: %d raw bytes, limit %d", ErrBlockTooLarge, rawLen, maxLen)
	}

	data := block[1+n:]
	if dl, ok := c.(decodedLener); ok {
		size, err := dl.DecodedLen(data)
		if err != nil {
			return nil, fmt.Errorf("unpack: %w", err)
		}
		if uint64(size) != rawLen {
			return nil, fmt.Errorf("unpack: %w: header %d, payload %d", ErrLengthMismatch, rawLen, size)
		}
	}

	payload, err := c.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("unpack: %w", err)
	}
	if uint64(len(payload)) != rawLen {
		return nil, fmt.Errorf("unpack: %w: header %d, payload %d", ErrLengthMismatch, rawLen, len(payload))
	}

	return payload, nil
}
