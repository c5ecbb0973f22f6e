package frame

import "errors"

var (
	// ErrInvalidInput is returned for malformed constructor or setter arguments.
	ErrInvalidInput = errors.New("frame: invalid input")

	// ErrDecode is returned when an image payload cannot be decoded.
	ErrDecode = errors.New("frame: decode failed")
)
