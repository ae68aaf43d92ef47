package gmix

import "errors"

// Sentinel errors returned (wrapped) by constructors, validators, and
// density queries. Match with errors.Is.
var (
	// ErrInvalidParameter reports a value of the wrong shape or type: a
	// missing vector where one is required, a weight outside its contract,
	// or a nil element inside a collection.
	ErrInvalidParameter = errors.New("gmix: invalid parameter")

	// ErrDimensionMismatch reports disagreement between the mean and the
	// covariance on feature dimensionality, or a covariance that is not
	// positive definite.
	ErrDimensionMismatch = errors.New("gmix: dimension mismatch")

	// ErrMalformedInput reports query data that cannot be normalized into
	// a row-per-sample layout.
	ErrMalformedInput = errors.New("gmix: malformed input")
)
