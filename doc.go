// Package kmeans3d partitions 3-D points into k clusters with Lloyd's
// k-means.
//
// # Quick Start
//
//	points := model.PointSet{{0, 0, 0}, {0.1, 0, 0}, {9, 9, 9}, {9.1, 9.1, 9.1}}
//	labels, err := kmeans3d.Cluster(points, 2, kmeans3d.DefaultMaxIterations)
//	if err != nil { ... }
//
// Labels are arbitrary: two runs may name the same grouping differently.
//
// # Algorithm
//
//  1. Pick k distinct points uniformly at random as initial centroids.
//  2. Assign every point to its nearest centroid (lowest index wins ties).
//  3. Move each centroid to the mean of its points. A centroid without
//     points is reseeded to a random point of the whole set.
//  4. Stop when the summed absolute centroid movement drops below
//     ConvergenceThreshold, or after maxIterations rounds.
//
// # Loading Data
//
// Tab-separated input is read by package dataset into a gonum matrix;
// PointsFromMatrix takes its first three columns:
//
//	ds, err := dataset.Load(ctx, blobstore.NewLocalStore("."), "points.tsv")
//	points, err := kmeans3d.PointsFromMatrix(ds.Data)
//
// # Reproducibility
//
// Initialization and reseeding draw from a RandSource. Pass WithSeed or
// WithRand for deterministic runs; the default source is seeded from the clock.
//
// # Not-a-Number Coordinates
//
// The loader turns unparsable fields into NaN. Such points are accepted by
// default and receive an arbitrary label; WithRejectNaN(true) fails the run
// with an InvalidPointError instead.
package kmeans3d
