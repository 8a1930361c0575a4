// Package distance provides the 3-D distance functions used by the
// clustering engine.
//
// # Functions
//
//   - Euclidean: sqrt(Σ (a_i - b_i)^2)
//   - SquaredEuclidean: Σ (a_i - b_i)^2, same ordering as Euclidean
//   - L1: Σ |a_i - b_i|, used to measure centroid movement
//
// # Usage
//
//	d := distance.Euclidean(model.Point{0, 0, 0}, model.Point{0, 3, 4}) // 5
package distance
