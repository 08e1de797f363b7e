package builder

import "fmt"

const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minWheelNodes    = 4
	minGridSide      = 1
)

func tooFew(method string, n, floor int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, floor, ErrTooFewVertices)
}

// Path emits 0—1—…—(n-1).
func Path(n int) Constructor {
	return func(s *sink) error {
		if n < minPathNodes {
			return tooFew("Path", n, minPathNodes)
		}
		prev := s.node(0)
		for i := 1; i < n; i++ {
			cur := s.node(i)
			s.edge(prev, cur)
			prev = cur
		}

		return nil
	}
}

// Cycle emits 0—1—…—(n-1)—0.
func Cycle(n int) Constructor {
	return func(s *sink) error {
		if n < minCycleNodes {
			return tooFew("Cycle", n, minCycleNodes)
		}
		for i := 0; i < n; i++ {
			s.node(i)
		}
		for i := 0; i < n; i++ {
			s.edge(s.node(i), s.node((i+1)%n))
		}

		return nil
	}
}

// Complete emits every pair i<j, or every ordered pair i≠j when directed.
func Complete(n int) Constructor {
	return func(s *sink) error {
		if n < minCompleteNodes {
			return tooFew("Complete", n, minCompleteNodes)
		}
		for i := 0; i < n; i++ {
			s.node(i)
		}
		forPairs(n, s.cfg.directed, func(i, j int) {
			s.edge(s.node(i), s.node(j))
		})

		return nil
	}
}

// Star emits a center 0 joined to leaves 1…n-1.
func Star(n int) Constructor {
	return func(s *sink) error {
		if n < minStarNodes {
			return tooFew("Star", n, minStarNodes)
		}
		center := s.node(0)
		for i := 1; i < n; i++ {
			s.edge(center, s.node(i))
		}

		return nil
	}
}

// Wheel emits a rim cycle 1…n-1 and spokes from hub 0 to every rim node.
func Wheel(n int) Constructor {
	return func(s *sink) error {
		if n < minWheelNodes {
			return tooFew("Wheel", n, minWheelNodes)
		}
		hub := s.node(0)
		rim := n - 1
		for i := 0; i < rim; i++ {
			s.edge(s.node(1+i), s.node(1+(i+1)%rim))
		}
		for i := 1; i < n; i++ {
			s.edge(hub, s.node(i))
		}

		return nil
	}
}

// Grid emits a rows×cols lattice in row-major order; each cell links right
// then down. Node (r, c) has index r*cols+c.
func Grid(rows, cols int) Constructor {
	return func(s *sink) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("Grid: %dx%d < min=%d: %w", rows, cols, minGridSide, ErrTooFewVertices)
		}
		for i := 0; i < rows*cols; i++ {
			s.node(i)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := s.node(r*cols + c)
				if c+1 < cols {
					s.edge(u, s.node(r*cols+c+1))
				}
				if r+1 < rows {
					s.edge(u, s.node((r+1)*cols+c))
				}
			}
		}

		return nil
	}
}

// forPairs calls fn for i<j, or for all i≠j when ordered, in ascending order.
func forPairs(n int, ordered bool, fn func(i, j int)) {
	for i := 0; i < n; i++ {
		j := i + 1
		if ordered {
			j = 0
		}
		for ; j < n; j++ {
			if i != j {
				fn(i, j)
			}
		}
	}
}
