package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrEmptyVocabulary     = errors.New("empty vocabulary")
	ErrInsufficientQuality = errors.New("insufficient topic quality")
)
