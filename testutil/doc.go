// Package testutil provides testing utilities for kmeans3d.
//
// This package is intended for use in tests and benchmarks only.
//
// # Deterministic Randomness
//
//	rng := testutil.NewRNG(42)
//	res, _ := kmeans3d.Run(points, 3, 50, kmeans3d.WithRand(rng))
//
// # Fixtures
//
//	points, truth := rng.ClusteredPoints(300, 3, 0.1)
//	tsv := testutil.TSV([]string{"x", "y", "z"}, points)
package testutil
