// SPDX-License-Identifier: MIT
// Package builder generates small, deterministic sample graphs: paths,
// cycles, complete graphs, stars, wheels, grids and seeded random graphs.
//
// A Constructor describes a topology; Generate runs it with Options (node
// naming, weights, direction, random source) and returns an Output that can
// become a core.Graph or be written as an edge list that package parse reads
// back.
//
// Example:
//
//	out, err := builder.Generate(builder.Grid(3, 3),
//		builder.WithSeed(7),
//		builder.WithUniformWeight(1, 9))
//	g, _ := out.Graph()
//
// Determinism:
//
//	Node IDs come from the ID scheme applied to 0, 1, 2, …; edges are
//	emitted in a fixed loop order; randomness only flows through the
//	*rand.Rand set by WithSeed or WithRand. Equal inputs give equal outputs.
package builder
