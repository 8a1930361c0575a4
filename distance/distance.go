package distance

import (
	"math"

	"github.com/hupe1980/kmeans3d/model"
)

// Euclidean calculates the Euclidean distance between two points.
func Euclidean(a, b model.Point) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// SquaredEuclidean calculates the squared Euclidean distance between two points.
// Ordering and ties are identical to Euclidean, so it is used on hot paths.
func SquaredEuclidean(a, b model.Point) float64 {
	d0 := a[0] - b[0]
	d1 := a[1] - b[1]
	d2 := a[2] - b[2]
	return d0*d0 + d1*d1 + d2*d2
}

// L1 calculates the sum of absolute coordinate differences.
func L1(a, b model.Point) float64 {
	return math.Abs(a[0]-b[0]) + math.Abs(a[1]-b[1]) + math.Abs(a[2]-b[2])
}

// Nearest returns the index of the centroid closest to p together with its
// squared distance. Ties resolve to the lowest index. If every distance is
// NaN, index 0 is returned with a NaN distance.
func Nearest(p model.Point, centroids []model.Centroid) (int, float64) {
	best := 0
	minDist := math.Inf(1)
	for j, c := range centroids {
		d := SquaredEuclidean(p, c)
		if d < minDist {
			minDist = d
			best = j
		}
	}
	if math.IsInf(minDist, 1) && len(centroids) > 0 {
		return best, SquaredEuclidean(p, centroids[0])
	}
	return best, minDist
}
