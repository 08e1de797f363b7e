package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stepgraph/core"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		rows []core.Triple
		want core.Shape
	}{
		{
			name: "empty",
			want: core.Shape{},
		},
		{
			name: "mirrored",
			rows: []core.Triple{{"A", "B", 1}, {"B", "A", 1}, {"B", "C", 2}, {"C", "B", 2}},
			want: core.Shape{},
		},
		{
			name: "one way",
			rows: []core.Triple{{"A", "B", 1}, {"B", "C", 2}},
			want: core.Shape{Directed: true},
		},
		{
			name: "mirror with other weight",
			rows: []core.Triple{{"A", "B", 1}, {"B", "A", 2}},
			want: core.Shape{Directed: true, Multigraph: true},
		},
		{
			name: "mirrored parallel",
			rows: []core.Triple{{"A", "B", 1}, {"B", "A", 1}, {"A", "B", 3}, {"B", "A", 3}},
			want: core.Shape{Multigraph: true},
		},
		{
			name: "directed parallel",
			rows: []core.Triple{{"A", "B", 1}, {"A", "B", 3}},
			want: core.Shape{Directed: true, Multigraph: true},
		},
		{
			name: "self-loops only",
			rows: []core.Triple{{"A", "A", 1}},
			want: core.Shape{},
		},
		{
			name: "repeated self-loop",
			rows: []core.Triple{{"A", "A", 1}, {"A", "A", 2}},
			want: core.Shape{Multigraph: true},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, core.Detect(tc.rows))
		})
	}
}

func TestCollapseMirrored(t *testing.T) {
	rows := []core.Triple{
		{"A", "B", 1},
		{"B", "A", 1},
		{"A", "A", 5},
		{"A", "B", 3},
		{"B", "A", 3},
		{"C", "B", 2},
		{"B", "C", 2},
	}
	assert.Equal(t, []core.Triple{
		{"A", "B", 1},
		{"A", "A", 5},
		{"A", "B", 3},
		{"C", "B", 2},
	}, core.CollapseMirrored(rows))
	assert.Empty(t, core.CollapseMirrored(nil))
}
