package medianheap

import "errors"

var (
	// ErrInvalidConfig signals an invalid heap configuration.
	ErrInvalidConfig = errors.New("medianheap: invalid configuration")
	// ErrInvariantViolated signals a broken balance or partition invariant,
	// as detected by Check.
	ErrInvariantViolated = errors.New("medianheap: invariant violated")
)
