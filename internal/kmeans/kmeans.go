package kmeans

import (
	"errors"
	"math/rand"
	"time"

	"github.com/hupe1980/kmeans3d/distance"
	"github.com/hupe1980/kmeans3d/model"
)

// ConvergenceThreshold bounds the total L1 centroid movement below which
// iteration stops early.
const ConvergenceThreshold = 1e-4

// ErrTooFewPoints is returned when k is not positive or exceeds the number of points.
var ErrTooFewPoints = errors.New("kmeans: not enough points for k clusters")

// Source supplies the randomness used for initialization and reseeding.
// *rand.Rand satisfies it.
type Source interface {
	// Perm returns a pseudo-random permutation of [0, n).
	Perm(n int) []int
	// Intn returns a pseudo-random number in [0, n).
	Intn(n int) int
}

// NewSource returns a Source seeded from the wall clock.
func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano())) // nolint gosec
}

// Iteration describes one completed assignment + update round.
type Iteration struct {
	// Index is zero-based.
	Index int
	// Movement is the summed L1 distance between old and new centroids.
	Movement float64
	// Empty is the number of clusters that received no points and were reseeded.
	Empty int
}

// Result is the outcome of Train.
type Result struct {
	// Assignment is the label of each point from the last assignment step.
	Assignment model.Assignment
	// Centroids are the means of the final assignment (reseeded where empty).
	Centroids []model.Centroid
	// Iterations is the number of completed rounds.
	Iterations int
	// Converged is true when the run stopped below ConvergenceThreshold.
	Converged bool
	// Reseeds counts empty-cluster reseeds over the whole run.
	Reseeds int
	// Movement is the centroid movement of the last round.
	Movement float64
}

// state is the clustering state between two rounds. It is never mutated
// after construction.
type state struct {
	centroids  []model.Centroid
	assignment model.Assignment
}

// Train clusters points into k groups using Lloyd's algorithm.
//
// With maxIter <= 0 the points are assigned once to the initial random
// centroids. observe, if non-nil, is called after every round.
func Train(points model.PointSet, k int, maxIter int, src Source, observe func(Iteration)) (*Result, error) {
	n := len(points)
	if k <= 0 || n < k {
		return nil, ErrTooFewPoints
	}
	if src == nil {
		src = NewSource()
	}

	cur := state{centroids: initCentroids(points, k, src)}

	if maxIter <= 0 {
		return &Result{
			Assignment: Assign(points, cur.centroids),
			Centroids:  cur.centroids,
		}, nil
	}

	res := &Result{}
	for iter := 0; iter < maxIter; iter++ {
		next, it := cur.step(points, src)
		it.Index = iter
		if observe != nil {
			observe(it)
		}

		res.Iterations = iter + 1
		res.Reseeds += it.Empty
		res.Movement = it.Movement
		res.Assignment = next.assignment
		res.Centroids = next.centroids

		if it.Movement < ConvergenceThreshold {
			res.Converged = true
			break
		}
		cur = next
	}

	return res, nil
}

// step runs one assignment + update round and returns the successor state.
func (s state) step(points model.PointSet, src Source) (state, Iteration) {
	assignment := Assign(points, s.centroids)
	centroids, empty := Update(points, assignment, len(s.centroids), src)

	return state{centroids: centroids, assignment: assignment}, Iteration{
		Movement: Movement(s.centroids, centroids),
		Empty:    empty,
	}
}

// initCentroids picks k distinct points uniformly at random.
func initCentroids(points model.PointSet, k int, src Source) []model.Centroid {
	perm := src.Perm(len(points))
	centroids := make([]model.Centroid, k)
	for i := 0; i < k; i++ {
		centroids[i] = points[perm[i]]
	}
	return centroids
}

// Assign labels every point with the index of its nearest centroid.
// Ties resolve to the lowest centroid index.
func Assign(points model.PointSet, centroids []model.Centroid) model.Assignment {
	assignment := make(model.Assignment, len(points))
	for i, p := range points {
		assignment[i], _ = distance.Nearest(p, centroids)
	}
	return assignment
}

// Update computes the coordinate-wise mean of each cluster. A cluster with no
// members is reseeded to a uniformly random point of the full set, which
// may coincide with a point already claimed by another cluster.
// It returns the new centroids and the number of reseeded clusters.
func Update(points model.PointSet, assignment model.Assignment, k int, src Source) ([]model.Centroid, int) {
	sums := make([]model.Centroid, k)
	counts := make([]int, k)

	for i, p := range points {
		c := assignment[i]
		sums[c][0] += p[0]
		sums[c][1] += p[1]
		sums[c][2] += p[2]
		counts[c]++
	}

	empty := 0
	for j := 0; j < k; j++ {
		if counts[j] > 0 {
			c := float64(counts[j])
			sums[j][0] /= c
			sums[j][1] /= c
			sums[j][2] /= c
		} else {
			sums[j] = points[src.Intn(len(points))]
			empty++
		}
	}

	return sums, empty
}

// Movement returns the sum of absolute coordinate differences between two
// centroid sets of equal length.
func Movement(old, next []model.Centroid) float64 {
	var total float64
	for j := range old {
		total += distance.L1(old[j], next[j])
	}
	return total
}
