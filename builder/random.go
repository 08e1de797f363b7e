package builder

import "fmt"

// RandomSparse emits an Erdős–Rényi G(n, p) graph: each pair (ordered pair
// when directed) becomes an edge with probability p. Nodes left without
// edges stay in Output.Nodes.
//
// p = 0 and p = 1 need no random source; anything in between does.
func RandomSparse(n int, p float64) Constructor {
	return func(s *sink) error {
		if n < 1 {
			return tooFew("RandomSparse", n, 1)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		rng := s.cfg.rng
		if rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			s.node(i)
		}
		forPairs(n, s.cfg.directed, func(i, j int) {
			switch {
			case p == 0:
				return
			case p < 1 && rng.Float64() >= p:
				return
			}
			s.edge(s.node(i), s.node(j))
		})

		return nil
	}
}
