package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Validate guards an invariant AddEdge cannot break, so the dangling edge is
// planted directly.
func TestValidate_DanglingEdge(t *testing.T) {
	g := NewGraph()
	g.AddEdge("A", "B", 1)
	g.edges = append(g.edges, Edge{ID: 1, From: "A", To: "ghost"})

	err := g.Validate()
	assert.ErrorIs(t, err, ErrDanglingEdge)
	assert.ErrorContains(t, err, `"ghost"`)
}
