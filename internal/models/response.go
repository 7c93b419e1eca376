package models

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string      `json:"status"`
	Timestamp string      `json:"timestamp"`
	Version   string      `json:"version"`
	Uptime    string      `json:"uptime"`
	Codec     CodecLimits `json:"codec"`
}

// CodecLimits reports the limits a client has to stay within
type CodecLimits struct {
	MaxVarintLen int    `json:"max_varint_len"`
	MaxBatch     int    `json:"max_batch"`
	MaxBlockSize int    `json:"max_block_size"` // Raw bytes accepted by /v1/sequence/decode
	Compression  string `json:"compression"`    // Default for /v1/sequence/encode
}

// EncodeResponse lists one hex encoding and its length per input value
type EncodeResponse struct {
	Encoded []string `json:"encoded"`
	Lengths []int    `json:"lengths"`
}

// DecodeResponse lists one decimal value and the bytes consumed per input
type DecodeResponse struct {
	Values   []string `json:"values"`
	Consumed []int    `json:"consumed"`
}

// SequenceEncodeResponse carries a packed block as hex
type SequenceEncodeResponse struct {
	Block       string `json:"block"`
	Size        int    `json:"size"`
	RawSize     int    `json:"raw_size"`
	Compression string `json:"compression"`
}

// SequenceDecodeResponse carries the values of an unpacked block
type SequenceDecodeResponse struct {
	Values []string `json:"values"`
	Count  int      `json:"count"`
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Path    string                 `json:"path,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}
