package kmeans3d

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/hupe1980/kmeans3d/internal/kmeans"
	"github.com/hupe1980/kmeans3d/model"
	"github.com/hupe1980/kmeans3d/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var separated = model.PointSet{
	{0, 0, 0}, {0.1, 0, 0},
	{9, 9, 9}, {9.1, 9.1, 9.1},
}

func TestCluster(t *testing.T) {
	t.Run("SeparatedGroupsRandomized", func(t *testing.T) {
		for trial := 0; trial < 100; trial++ {
			labels, err := Cluster(separated, 2, 20)
			require.NoError(t, err)

			require.Len(t, labels, 4)
			assert.Equal(t, labels[0], labels[1])
			assert.Equal(t, labels[2], labels[3])
			assert.NotEqual(t, labels[0], labels[2])
		}
	})

	t.Run("LabelsInRange", func(t *testing.T) {
		rng := testutil.NewRNG(42)
		points := rng.UniformPoints(200)

		for _, k := range []int{1, 2, 5, 17, 200} {
			labels, err := Cluster(points, k, DefaultMaxIterations, WithRand(rng))
			require.NoError(t, err)
			assert.Len(t, labels, len(points))
			assert.NoError(t, labels.Validate(k))
		}
	})

	t.Run("ZeroIterations", func(t *testing.T) {
		labels, err := Cluster(separated, 2, 0)
		require.NoError(t, err)
		assert.Len(t, labels, 4)
		assert.NoError(t, labels.Validate(2))
	})

	t.Run("NegativeIterations", func(t *testing.T) {
		labels, err := Cluster(separated, 3, -1)
		require.NoError(t, err)
		assert.Len(t, labels, 4)
	})
}

func TestCluster_InsufficientData(t *testing.T) {
	tests := []struct {
		name   string
		points model.PointSet
		k      int
	}{
		{"KGreaterThanPoints", separated, 5},
		{"KZero", separated, 0},
		{"KNegative", separated, -2},
		{"NoPoints", model.PointSet{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels, err := Cluster(tt.points, tt.k, DefaultMaxIterations)
			assert.Nil(t, labels)
			require.ErrorIs(t, err, ErrInsufficientData)

			var ide *InsufficientDataError
			require.True(t, errors.As(err, &ide))
			assert.Equal(t, len(tt.points), ide.Points)
			assert.Equal(t, tt.k, ide.K)
		})
	}
}

func TestInsufficientDataError_Message(t *testing.T) {
	err := &InsufficientDataError{Points: 2, K: 5}
	assert.Equal(t, "not enough data points (2) for 5 clusters", err.Error())

	err = &InsufficientDataError{Points: 2, K: 0}
	assert.Contains(t, err.Error(), "k must be positive")
}

func TestCluster_NaN(t *testing.T) {
	points := model.PointSet{{0, 0, 0}, {math.NaN(), 0, 0}, {9, 9, 9}}

	t.Run("AcceptedByDefault", func(t *testing.T) {
		labels, err := Cluster(points, 2, 10)
		require.NoError(t, err)
		assert.Len(t, labels, 3)
		assert.NoError(t, labels.Validate(2))
	})

	t.Run("Rejected", func(t *testing.T) {
		_, err := Cluster(points, 2, 10, WithRejectNaN(true))
		require.ErrorIs(t, err, ErrInvalidPoint)

		var ipe *InvalidPointError
		require.True(t, errors.As(err, &ipe))
		assert.Equal(t, 1, ipe.Index)
	})

	t.Run("InsufficientDataWins", func(t *testing.T) {
		_, err := Cluster(points, 4, 10, WithRejectNaN(true))
		assert.ErrorIs(t, err, ErrInsufficientData)
	})
}

func TestRun(t *testing.T) {
	points, _ := testutil.NewRNG(7).ClusteredPoints(60, 3, 0.3)

	res, err := Run(points, 3, DefaultMaxIterations, WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, 3, res.K())
	assert.True(t, res.Converged)
	assert.Greater(t, res.Iterations, 0)
	assert.Less(t, res.Movement, ConvergenceThreshold)
	assert.Equal(t, res.Assignment.Counts(3), res.Sizes())

	members := res.Members()
	require.Len(t, members, 3)
	var total uint64
	for j, m := range members {
		total += m.GetCardinality()
		for _, idx := range m.ToArray() {
			assert.Equal(t, j, res.Assignment[idx])
		}
	}
	assert.Equal(t, uint64(len(points)), total)
}

func TestRun_Deterministic(t *testing.T) {
	points := testutil.NewRNG(3).UniformPoints(100)

	r1, err := Run(points, 4, DefaultMaxIterations, WithSeed(99))
	require.NoError(t, err)
	r2, err := Run(points, 4, DefaultMaxIterations, WithRand(testutil.NewRNG(99)))
	require.NoError(t, err)
	r3, err := Run(points, 4, DefaultMaxIterations, WithSeed(99))
	require.NoError(t, err)

	assert.Equal(t, r1.Assignment, r3.Assignment)
	assert.Equal(t, r1.Centroids, r3.Centroids)
	assert.Len(t, r2.Assignment, 100)
}

func TestRun_Metrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	res, err := Run(separated, 2, DefaultMaxIterations, WithSeed(5), WithMetricsCollector(metrics))
	require.NoError(t, err)

	_, err = Run(separated, 9, DefaultMaxIterations, WithMetricsCollector(metrics))
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.ClusterCount)
	assert.Equal(t, int64(1), stats.ClusterErrors)
	assert.Equal(t, int64(1), stats.ConvergedCount)
	assert.Equal(t, int64(4), stats.PointsTotal)
	assert.Equal(t, int64(res.Iterations), stats.IterationCount)
	assert.Equal(t, int64(res.Reseeds), stats.ReseedCount)
}

func TestRun_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, slog.LevelDebug)

	_, err := Run(separated, 2, DefaultMaxIterations, WithSeed(5), WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"iteration completed"`)
	assert.Contains(t, out, `"msg":"clustering completed"`)
	assert.Contains(t, out, `"converged":true`)

	buf.Reset()
	_, err = Run(separated, 0, DefaultMaxIterations, WithLogger(logger))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"msg":"clustering failed"`)
}

func TestRandSource(t *testing.T) {
	// Sources accepted by WithRand are handed to the trainer unchanged.
	var src RandSource = testutil.NewRNG(7)
	var trainer kmeans.Source = src

	o := applyOptions([]Option{WithRand(src)})
	assert.Same(t, trainer, o.rand)
}

func TestWithNilOptions(t *testing.T) {
	labels, err := Cluster(separated, 2, 10, nil, WithLogger(nil), WithMetricsCollector(nil), WithRand(nil))
	require.NoError(t, err)
	assert.Len(t, labels, 4)
}

func TestPointsFromMatrix(t *testing.T) {
	t.Run("FirstThreeColumns", func(t *testing.T) {
		m := mat.NewDense(2, 4, []float64{
			1, 2, 3, 4,
			5, 6, 7, 8,
		})

		points, err := PointsFromMatrix(m)
		require.NoError(t, err)
		assert.Equal(t, model.PointSet{{1, 2, 3}, {5, 6, 7}}, points)
	})

	t.Run("TooFewColumns", func(t *testing.T) {
		_, err := PointsFromMatrix(mat.NewDense(3, 2, nil))
		require.ErrorIs(t, err, ErrInvalidDimension)

		var ide *InvalidDimensionError
		require.True(t, errors.As(err, &ide))
		assert.Equal(t, 2, ide.Dimension)
	})
}
