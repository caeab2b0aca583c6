package kdsearch

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kdsearch/collector"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = collector.ErrInvalidK

	// ErrNotFound is returned when the requested point identifier is not
	// present in the index.
	ErrNotFound = errors.New("point not found")

	// ErrInvalidEpsilon is returned when the approximation tolerance is
	// negative or NaN.
	ErrInvalidEpsilon = errors.New("epsilon must be non-negative")

	// ErrInvalidRadius is returned when the radius cap is negative or NaN.
	ErrInvalidRadius = errors.New("max radius must be non-negative")

	// ErrNaNVector is returned when a vector contains a NaN component.
	// NaN components would poison every squared distance derived from
	// the vector, so they are rejected at the boundary.
	ErrNaNVector = errors.New("vector contains NaN")
)

// ErrDimensionMismatch is a named error type for dimension mismatch.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

// Error returns the error message for dimension mismatch.
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension is a named error type for an invalid configured
// dimension.
type ErrInvalidDimension struct {
	Dimension int
}

// Error returns the error message for an invalid dimension.
func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}
