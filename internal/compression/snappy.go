package compression

import (
	"fmt"

	"github.com/golang/snappy"
)

// SnappyCompressor implements Compressor using Snappy algorithm
type SnappyCompressor struct{}

// NewSnappyCompressor creates a new Snappy compressor
func NewSnappyCompressor() *SnappyCompressor {
	return &SnappyCompressor{}
}

// Compress compresses data using Snappy. An empty payload stays empty so an
// empty sequence packs to a header-only block.
func (s *SnappyCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return snappy.Encode(nil, data), nil
}

// DecodedLen reads the uncompressed size from the Snappy stream header
func (s *SnappyCompressor) DecodedLen(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	n, err := snappy.DecodedLen(data)
	if err != nil {
		return 0, fmt.Errorf("snappy header: %w", err)
	}
	return n, nil
}

// Decompress decodes a Snappy stream into a buffer sized from its header.
// Callers bounding memory check DecodedLen first.
func (s *SnappyCompressor) Decompress(data []byte) ([]byte, error) {
	n, err := s.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []byte{}, nil
	}

	decompressed, err := snappy.Decode(make([]byte, n), data)
	if err != nil {
		return nil, fmt.Errorf("snappy decompress failed: %w", err)
	}
	return decompressed, nil
}

// Algorithm returns Snappy
func (s *SnappyCompressor) Algorithm() Algorithm {
	return Snappy
}
