package varint

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports an absent or undersized buffer.
	ErrInvalidArgument = errors.New("varint: invalid argument")

	// ErrIncomplete reports input that ends, or hits MaxLen64 bytes,
	// before a byte with a clear continuation bit.
	ErrIncomplete = errors.New("varint: incomplete varint")

	// ErrOverflow reports an encoding whose value does not fit in 64 bits.
	ErrOverflow = errors.New("varint: value overflows 64 bits")
)

// DecodeError records where in the input decoding stopped.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v at byte %d", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
