package phrasetop

import "errors"

// Sentinel errors for common error conditions
var (
	ErrNoInputPath       = errors.New("input path is required")
	ErrInvalidSplitCount = errors.New("split count must be positive")
	ErrInvalidBufferSize = errors.New("buffer size must be positive")
	ErrInvalidDelimiter  = errors.New("delimiter must not be a line break")
)
