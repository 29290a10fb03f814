package interp

import "errors"

var (
	// ErrEmptyTable indicates a table with no breakpoints
	ErrEmptyTable = errors.New("interp: table must have at least one breakpoint")
	// ErrLengthMismatch indicates domain and values of different lengths
	ErrLengthMismatch = errors.New("interp: domain and values must have the same length")
	// ErrBadBreakpoint indicates a NaN or infinite domain entry
	ErrBadBreakpoint = errors.New("interp: breakpoint must be a finite number")
	// ErrUnorderedDomain indicates a decreasing domain
	ErrUnorderedDomain = errors.New("interp: domain must be non-decreasing")
	// ErrNilLerp indicates a table built without a blend function
	ErrNilLerp = errors.New("interp: lerp function is nil")
)
