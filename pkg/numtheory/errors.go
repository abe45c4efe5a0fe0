package numtheory

import "errors"

// Errors returned by the number theory primitives.
var (
	ErrNotPositive    = errors.New("numtheory: not a positive integer")
	ErrNotNonNegative = errors.New("numtheory: not a non-negative integer")
	ErrNotAPrime      = errors.New("numtheory: not a prime number")
)
