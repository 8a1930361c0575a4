package kmeans3d

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/kmeans3d/internal/kmeans"
	"github.com/hupe1980/kmeans3d/model"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultMaxIterations is the iteration cap used by the CLI.
	DefaultMaxIterations = 50

	// ConvergenceThreshold bounds the total centroid movement below which a
	// run stops early.
	ConvergenceThreshold = kmeans.ConvergenceThreshold
)

// Result is the outcome of a clustering run.
type Result struct {
	// Assignment holds one label in [0, K) per input point.
	Assignment model.Assignment
	// Centroids are the cluster means after the last round.
	Centroids []model.Centroid
	// Iterations is the number of completed assignment + update rounds.
	Iterations int
	// Converged reports whether the run stopped below ConvergenceThreshold.
	Converged bool
	// Reseeds counts empty-cluster reseeds over the run.
	Reseeds int
	// Movement is the total centroid movement of the last round.
	Movement float64
}

// K returns the number of clusters.
func (r *Result) K() int {
	return len(r.Centroids)
}

// Members returns, for each cluster, the bitmap of point indices assigned to it.
func (r *Result) Members() []*roaring.Bitmap {
	members := make([]*roaring.Bitmap, r.K())
	for j := range members {
		members[j] = roaring.New()
	}
	for i, c := range r.Assignment {
		members[c].Add(uint32(i))
	}
	return members
}

// Sizes returns the number of points in each cluster.
func (r *Result) Sizes() []int {
	members := r.Members()
	sizes := make([]int, len(members))
	for j, m := range members {
		sizes[j] = int(m.GetCardinality())
	}
	return sizes
}

// Cluster partitions points into k clusters and returns one label per point.
//
// It fails with an InsufficientDataError when k <= 0 or len(points) < k.
// maxIterations == 0 is valid: points are assigned to the nearest of the k
// randomly chosen initial centroids.
func Cluster(points model.PointSet, k, maxIterations int, optFns ...Option) (model.Assignment, error) {
	res, err := Run(points, k, maxIterations, optFns...)
	if err != nil {
		return nil, err
	}
	return res.Assignment, nil
}

// Run is like Cluster but returns the full Result.
func Run(points model.PointSet, k, maxIterations int, optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)
	start := time.Now()

	res, err := run(points, k, maxIterations, &o)

	stats := RunStats{Points: len(points), K: k}
	if res != nil {
		stats.Iterations = res.Iterations
		stats.Converged = res.Converged
		stats.Reseeds = res.Reseeds
	}
	o.metricsCollector.RecordCluster(stats, time.Since(start), err)
	o.logger.LogCluster(stats, err)

	return res, err
}

func run(points model.PointSet, k, maxIterations int, o *options) (*Result, error) {
	if k <= 0 || len(points) < k {
		return nil, translateError(kmeans.ErrTooFewPoints, len(points), k)
	}
	if o.rejectNaN {
		for i, p := range points {
			if p.HasNaN() {
				return nil, &InvalidPointError{Index: i}
			}
		}
	}

	logger := o.logger.WithK(k).WithCount(len(points))
	tr, err := kmeans.Train(points, k, maxIterations, o.rand, func(it kmeans.Iteration) {
		logger.LogIteration(it.Index, it.Movement, it.Empty)
		o.metricsCollector.RecordIteration(it.Movement, it.Empty)
	})
	if err != nil {
		return nil, translateError(err, len(points), k)
	}

	return &Result{
		Assignment: tr.Assignment,
		Centroids:  tr.Centroids,
		Iterations: tr.Iterations,
		Converged:  tr.Converged,
		Reseeds:    tr.Reseeds,
		Movement:   tr.Movement,
	}, nil
}

// PointsFromMatrix builds a point set from the first three columns of m.
// Extra columns are ignored; fewer than three columns is an error.
func PointsFromMatrix(m mat.Matrix) (model.PointSet, error) {
	rows, cols := m.Dims()
	if cols < model.Dim {
		return nil, &InvalidDimensionError{Dimension: cols}
	}

	points := make(model.PointSet, rows)
	for i := range points {
		points[i] = model.Point{m.At(i, 0), m.At(i, 1), m.At(i, 2)}
	}
	return points, nil
}
