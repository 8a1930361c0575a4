// Package model defines the core types shared by the clustering engine,
// the loader and the CLI.
//
// # Data Types
//
//   - Point: a fixed 3-tuple of coordinates, immutable once read
//   - PointSet: ordered points, index = row identity
//   - Centroid: the current mean position of one cluster
//   - Assignment: per-point cluster label, len == len(PointSet)
//
// # Label Encoding
//
// An Assignment is persisted as plain text, one decimal label per line in
// input order:
//
//	labels := model.Assignment{0, 1, 1, 0}
//	text, _ := labels.MarshalText() // "0\n1\n1\n0\n"
package model
