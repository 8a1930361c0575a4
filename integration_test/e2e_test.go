package integration_test

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/hupe1980/kmeans3d"
	"github.com/hupe1980/kmeans3d/blobstore"
	"github.com/hupe1980/kmeans3d/dataset"
	"github.com/hupe1980/kmeans3d/testutil"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func parseLabels(t *testing.T, data []byte) []int {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	labels := make([]int, len(lines))
	for i, line := range lines {
		v, err := strconv.Atoi(line)
		require.NoError(t, err)
		labels[i] = v
	}
	return labels
}

// TestE2E_LocalRoundTrip loads a compressed table from disk, clusters it and
// writes the labels back through the same store.
func TestE2E_LocalRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewLocalStore(t.TempDir())

	rng := testutil.NewRNG(11)
	points, truth := rng.ClusteredPoints(300, 3, 0.4)
	raw := testutil.TSV([]string{"x", "y", "z"}, points)
	require.NoError(t, store.Put(ctx, "points.tsv.gz", gzipBytes(t, []byte(raw))))

	ds, err := dataset.Load(ctx, store, "points.tsv.gz")
	require.NoError(t, err)

	loaded, err := kmeans3d.PointsFromMatrix(ds.Data)
	require.NoError(t, err)
	require.Equal(t, points, loaded)

	res, err := kmeans3d.Run(loaded, 3, kmeans3d.DefaultMaxIterations, kmeans3d.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, res.Assignment.Validate(3))

	data, err := res.Assignment.MarshalText()
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "labels.txt", data))

	rc, err := store.Open(ctx, "labels.txt")
	require.NoError(t, err)
	defer rc.Close()

	var got bytes.Buffer
	_, err = got.ReadFrom(rc)
	require.NoError(t, err)

	labels := parseLabels(t, got.Bytes())
	assert.Equal(t, []int(res.Assignment), labels)
	assert.Len(t, truth, len(labels))

	total := 0
	for _, n := range res.Sizes() {
		total += n
	}
	assert.Equal(t, len(points), total)
}

// TestE2E_TwoBlobs checks that two well separated groups are always split
// the same way as the generator placed them, whatever the seed.
func TestE2E_TwoBlobs(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	rng := testutil.NewRNG(5)
	points, truth := rng.ClusteredPoints(200, 2, 0.5)
	require.NoError(t, store.Put(ctx, "blobs.tsv", []byte(testutil.TSV([]string{"x", "y", "z"}, points))))

	ds, err := dataset.Load(ctx, store, "blobs.tsv")
	require.NoError(t, err)
	loaded, err := kmeans3d.PointsFromMatrix(ds.Data)
	require.NoError(t, err)

	for seed := int64(0); seed < 20; seed++ {
		labels, err := kmeans3d.Cluster(loaded, 2, kmeans3d.DefaultMaxIterations, kmeans3d.WithSeed(seed))
		require.NoError(t, err)
		assert.True(t, testutil.SameGrouping(truth, labels), "seed %d", seed)
	}
}
