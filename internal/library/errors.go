package library

import "errors"

// Domain errors
var (
	// ErrShaderNotFound - no saved program with the given ID
	ErrShaderNotFound = errors.New("library: shader not found")

	// ErrProgramRequired - save called without a program body
	ErrProgramRequired = errors.New("library: program is required")
)
