package models

import "fmt"

// EncodeRequest represents a batch encode request. Values are decimal
// strings so the full 64-bit range survives JSON.
type EncodeRequest struct {
	Values []string `json:"values"`
	Signed bool     `json:"signed"`
}

// DecodeRequest represents a batch decode request of hex-encoded varints
type DecodeRequest struct {
	Encoded []string `json:"encoded"`
	Signed  bool     `json:"signed"`
}

// SequenceEncodeRequest packs a whole sequence into one block
type SequenceEncodeRequest struct {
	Values      []string `json:"values"`
	Delta       bool     `json:"delta"`       // Delta + zig-zag (signed values) instead of plain unsigned
	Compression string   `json:"compression"` // none, snappy; empty uses the configured default
}

// SequenceDecodeRequest unpacks a block produced by SequenceEncodeRequest
type SequenceDecodeRequest struct {
	Block string `json:"block"`
	Delta bool   `json:"delta"`
}

// ValidateBatch checks a batch size against the configured limit
func ValidateBatch(n, max int) error {
	if n == 0 {
		return fmt.Errorf("at least one value is required")
	}
	if n > max {
		return fmt.Errorf("batch of %d exceeds limit of %d", n, max)
	}
	return nil
}
