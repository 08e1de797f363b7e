// File: shape.go
// Role: Pure shape detection over raw triples (directedness, multiplicity)
//       and mirror collapsing for undirected input listed in both directions.

package core

// Shape is the detected kind of a raw edge list.
type Shape struct {
	Directed   bool
	Multigraph bool
}

type pairKey struct{ from, to string }

type weightedKey struct {
	from, to string
	weight   float64
}

// Detect classifies triples in one call; see DetectDirected and DetectMultigraph.
func Detect(triples []Triple) Shape {
	return Shape{
		Directed:   DetectDirected(triples),
		Multigraph: DetectMultigraph(triples),
	}
}

// DetectDirected reports whether the list describes a directed graph.
//
// An undirected edge list mirrors every edge: for each pair (u, v) the set of
// weights on u→v equals the set of weights on v→u. The list is directed as
// soon as one pair breaks that symmetry. Self-loops carry no direction and
// are ignored.
// Complexity: O(E)
func DetectDirected(triples []Triple) bool {
	weights := make(map[pairKey]map[float64]struct{})
	for _, t := range triples {
		if t.From == t.To {
			continue
		}
		k := pairKey{t.From, t.To}
		if weights[k] == nil {
			weights[k] = make(map[float64]struct{})
		}
		weights[k][t.Weight] = struct{}{}
	}

	for k, fwd := range weights {
		rev := weights[pairKey{k.to, k.from}]
		if len(fwd) != len(rev) {
			return true
		}
		for w := range fwd {
			if _, ok := rev[w]; !ok {
				return true
			}
		}
	}

	return false
}

// DetectMultigraph reports whether some unordered pair carries more than one
// edge. In a mirror-listed undirected list, u→v and its mirror v→u are one
// logical edge, so the per-pair count is the larger of the two directions.
// Complexity: O(E)
func DetectMultigraph(triples []Triple) bool {
	directed := DetectDirected(triples)
	count := make(map[pairKey]int)
	for _, t := range triples {
		count[pairKey{t.From, t.To}]++
	}

	for k, c := range count {
		if k.from == k.to {
			if c > 1 {
				return true
			}
			continue
		}
		rev := count[pairKey{k.to, k.from}]
		if directed {
			if c+rev > 1 {
				return true
			}
			continue
		}
		if c > 1 || rev > 1 {
			return true
		}
	}

	return false
}

// CollapseMirrored drops the mirror copy of each undirected edge: a row
// (v, u, w) is removed when an earlier unmatched row (u, v, w) exists.
// Self-loops are kept as listed. Order of the kept rows is preserved.
// Complexity: O(E)
func CollapseMirrored(triples []Triple) []Triple {
	pending := make(map[weightedKey]int)
	out := make([]Triple, 0, len(triples))
	for _, t := range triples {
		if t.From == t.To {
			out = append(out, t)
			continue
		}
		mirror := weightedKey{t.To, t.From, t.Weight}
		if pending[mirror] > 0 {
			pending[mirror]--
			continue
		}
		pending[weightedKey{t.From, t.To, t.Weight}]++
		out = append(out, t)
	}

	return out
}
