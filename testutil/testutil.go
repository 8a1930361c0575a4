package testutil

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/hupe1980/kmeans3d/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe and satisfies the clustering engine's random source.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// UniformPoints generates points with coordinates in [0, 1).
func (r *RNG) UniformPoints(num int) model.PointSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make(model.PointSet, num)
	for i := range points {
		points[i] = model.Point{r.rand.Float64(), r.rand.Float64(), r.rand.Float64()}
	}
	return points
}

// ClusteredPoints generates num points around `clusters` centers placed 10
// units apart on the diagonal, with Gaussian noise of the given spread.
// It also returns the index of the generating center for each point.
func (r *RNG) ClusteredPoints(num, clusters int, spread float64) (model.PointSet, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make(model.PointSet, num)
	truth := make([]int, num)
	for i := range num {
		c := i % clusters
		center := float64(c) * 10
		points[i] = model.Point{
			center + r.rand.NormFloat64()*spread,
			center + r.rand.NormFloat64()*spread,
			center + r.rand.NormFloat64()*spread,
		}
		truth[i] = c
	}
	return points, truth
}

// SameGrouping reports whether two labelings induce the same partition,
// regardless of the label values themselves.
func SameGrouping(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	ab := make(map[int]int)
	ba := make(map[int]int)
	for i := range a {
		if x, ok := ab[a[i]]; ok && x != b[i] {
			return false
		}
		if y, ok := ba[b[i]]; ok && y != a[i] {
			return false
		}
		ab[a[i]] = b[i]
		ba[b[i]] = a[i]
	}
	return true
}

// TSV renders points as tab-separated text with an optional header line.
func TSV(header []string, points model.PointSet) string {
	var sb strings.Builder
	if len(header) > 0 {
		sb.WriteString(strings.Join(header, "\t"))
		sb.WriteByte('\n')
	}
	for _, p := range points {
		for j, v := range p {
			if j > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
