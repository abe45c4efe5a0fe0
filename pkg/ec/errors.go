package ec

import "errors"

// Errors returned by curve construction and the group law. Failures of the
// underlying number theory (for example a non-prime modulus) are returned
// unchanged and can be matched against the numtheory errors.
var (
	ErrNotNonSingular = errors.New("ec: not a non-singular curve")
	ErrNotOnCurve     = errors.New("ec: point not on the curve")
)
