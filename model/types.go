package model

import (
	"fmt"
	"math"
	"strconv"
)

// Dim is the fixed number of coordinates per point.
const Dim = 3

// Point is a 3-D coordinate.
type Point [Dim]float64

// HasNaN reports whether any coordinate is not-a-number.
func (p Point) HasNaN() bool {
	return math.IsNaN(p[0]) || math.IsNaN(p[1]) || math.IsNaN(p[2])
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p[0], p[1], p[2])
}

// PointSet is an ordered sequence of points. The slice index is the row
// identity and is preserved in every Assignment derived from it.
type PointSet []Point

// Len returns the number of points.
func (s PointSet) Len() int { return len(s) }

// Centroid is the mean position of a cluster.
type Centroid = Point

// Assignment maps point index to cluster index.
type Assignment []int

// Validate checks that every label lies in [0, k).
func (a Assignment) Validate(k int) error {
	for i, c := range a {
		if c < 0 || c >= k {
			return fmt.Errorf("label %d at index %d out of range [0, %d)", c, i, k)
		}
	}
	return nil
}

// Counts returns the number of points per cluster.
// Labels outside [0, k) are ignored.
func (a Assignment) Counts(k int) []int {
	counts := make([]int, k)
	for _, c := range a {
		if c >= 0 && c < k {
			counts[c]++
		}
	}
	return counts
}

// MarshalText encodes the assignment as one decimal label per line.
func (a Assignment) MarshalText() ([]byte, error) {
	buf := make([]byte, 0, len(a)*2)
	for _, c := range a {
		if c < 0 {
			return nil, fmt.Errorf("negative label %d", c)
		}
		buf = strconv.AppendInt(buf, int64(c), 10)
		buf = append(buf, '\n')
	}
	return buf, nil
}
