// Package kmeans implements Lloyd's k-means over 3-D points.
//
// Each iteration builds a new state (centroids, assignment) from the
// previous one. Randomness is supplied by the caller through Source so runs
// can be made reproducible.
package kmeans
