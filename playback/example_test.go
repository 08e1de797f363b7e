package playback_test

import (
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/dijkstra"
	"github.com/katalvlaran/stepgraph/playback"
	"github.com/katalvlaran/stepgraph/trace"
)

// ExamplePlayer steps through a Dijkstra trace by hand.
func ExamplePlayer() {
	g, _ := core.Build([]core.Triple{
		{From: "A", To: "B", Weight: 4},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 10},
	}, false, false)
	seq, _ := dijkstra.ShortestPathSteps(g, "A", dijkstra.WithEnd("C"))

	p := playback.New()
	p.Load(trace.Collect(seq))
	fmt.Println(p.Status().State)

	p.Step()
	p.Step()
	st := p.Status()
	fmt.Println(st.State, st.Cursor)

	for p.Step() {
	}
	ov := p.Overlay()
	fmt.Println(p.Status().State, ov.Status, ov.Path)
	// Output:
	// ready
	// paused 2
	// finished found [A→B(4) B→C(2)]
}
