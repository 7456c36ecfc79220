package cataas

import "errors"

// Fetch errors
var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrDecodeResponse   = errors.New("failed to decode response")
	ErrEmptyImage       = errors.New("empty image body")
	ErrImageTooLarge    = errors.New("image too large")
)

// Request errors
var (
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidFilter = errors.New("invalid filter")
	ErrEncodeQuery   = errors.New("failed to encode query")
)
