package trace

import "github.com/katalvlaran/stepgraph/core"

// Overlay is the rendering-relevant state after replaying a prefix of a
// trace: what a presentation layer colors and highlights.
type Overlay struct {
	Current  string      `json:"current,omitempty"`
	Visited  []string    `json:"visited"`
	Frontier []string    `json:"frontier"`
	Path     []core.Edge `json:"path"`
	Status   Status      `json:"status,omitempty"`
}

// Apply folds s into the overlay. Steps carry cumulative snapshots, so
// folding replaces rather than merges.
func (o *Overlay) Apply(s Step) {
	o.Current = s.Current
	o.Visited = Nodes(s.Visited)
	o.Frontier = Nodes(s.Frontier)
	o.Path = Edges(s.Path)
	o.Status = s.Status
}

// Clear resets o to the empty overlay shown before the first step.
func (o *Overlay) Clear() {
	*o = Overlay{Visited: []string{}, Frontier: []string{}, Path: []core.Edge{}}
}

// Clone returns a deep copy of o.
func (o Overlay) Clone() Overlay {
	return Overlay{
		Current:  o.Current,
		Visited:  Nodes(o.Visited),
		Frontier: Nodes(o.Frontier),
		Path:     Edges(o.Path),
		Status:   o.Status,
	}
}

// Replay returns the overlay after the first cursor steps of steps.
// cursor is clamped to [0, len(steps)].
func Replay(steps []Step, cursor int) Overlay {
	var o Overlay
	o.Clear()
	if cursor > len(steps) {
		cursor = len(steps)
	}
	for i := 0; i < cursor; i++ {
		o.Apply(steps[i])
	}

	return o
}
