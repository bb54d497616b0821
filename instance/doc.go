// SPDX-License-Identifier: MIT

// Package instance produces and persists market.Instance values.
//
// Generate draws a random, valid instance from a seed: ports scattered on a
// 100×100 sea, Euclidean travel times rounded to one decimal and closed under
// shortest paths (matrix.FloydWarshall) so the triangle inequality holds, a time
// budget that always admits at least one round trip, and item tables where most
// types carry a margin. The same seed always yields the same instance, ID included.
//
// Load/Save and Decode/Encode move instances through YAML. Unavailable items
// keep their sentinel fields, written as .inf and -.inf.
package instance
