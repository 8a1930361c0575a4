package kmeans3d

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kmeans3d/internal/kmeans"
)

var (
	// ErrInsufficientData is returned when there are fewer points than
	// requested clusters, or k is not positive.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInvalidDimension is returned when a matrix has fewer than three columns.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrInvalidPoint is returned when NaN rejection is enabled and a point
	// has a NaN coordinate.
	ErrInvalidPoint = errors.New("invalid point")
)

// InsufficientDataError indicates that k clusters cannot be formed from the
// given points. It matches ErrInsufficientData with errors.Is.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type InsufficientDataError struct {
	Points int
	K      int
	cause  error
}

func (e *InsufficientDataError) Error() string {
	if e.K <= 0 {
		return fmt.Sprintf("invalid cluster count %d: k must be positive", e.K)
	}
	return fmt.Sprintf("not enough data points (%d) for %d clusters", e.Points, e.K)
}

func (e *InsufficientDataError) Is(target error) bool { return target == ErrInsufficientData }

func (e *InsufficientDataError) Unwrap() error { return e.cause }

// InvalidDimensionError indicates a matrix that cannot provide three coordinates.
type InvalidDimensionError struct {
	Dimension int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("invalid dimension: need at least 3 columns, got %d", e.Dimension)
}

func (e *InvalidDimensionError) Is(target error) bool { return target == ErrInvalidDimension }

// InvalidPointError identifies the first point with a NaN coordinate.
type InvalidPointError struct {
	Index int
}

func (e *InvalidPointError) Error() string {
	return fmt.Sprintf("invalid point at row %d: NaN coordinate", e.Index)
}

func (e *InvalidPointError) Is(target error) bool { return target == ErrInvalidPoint }

func translateError(err error, points, k int) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, kmeans.ErrTooFewPoints) {
		return &InsufficientDataError{Points: points, K: k, cause: err}
	}
	return err
}
