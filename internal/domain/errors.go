package domain

import "errors"

var (
	// ErrInvalidInput indicates malformed caller input such as a bad month
	// string, a non-positive gap threshold, or a negative duration.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRange indicates a requested week number outside the range
	// computed for the month.
	ErrInvalidRange = errors.New("range out of bounds")
)
