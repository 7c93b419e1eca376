package utils

import "time"

// =============================================================================
// Timeout Constants
// =============================================================================

// HTTP Server Timeouts
const (
	// ReadTimeout bounds reading a full request, body included
	ReadTimeout = 10 * time.Second

	// WriteTimeout bounds writing a response
	WriteTimeout = 10 * time.Second

	// IdleTimeout is how long keep-alive connections wait for the next request
	IdleTimeout = 60 * time.Second

	// ShutdownTimeout is how long in-flight requests get to finish on shutdown
	ShutdownTimeout = 10 * time.Second
)

// =============================================================================
// Codec Constants
// =============================================================================

const (
	// DefaultMaxBatch is the default limit on values per request
	DefaultMaxBatch = 100000

	// DefaultBodyLimit is the default request body limit in bytes
	DefaultBodyLimit = 4 * 1024 * 1024
)
