// SPDX-License-Identifier: MIT
// Package core defines the Graph, Edge and Triple types consumed by every
// algorithm in stepgraph, plus the sentinel errors of the graph model.
//
// This file declares Edge, Graph, GraphOption, sentinel errors and the
// NewGraph / Build constructors.
//
// Errors:
//
//	ErrEmptyNodeID   - node ID is the empty string.
//	ErrNodeNotFound  - requested node does not exist.
//	ErrDanglingEdge  - an edge references a node absent from the node set.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDanglingEdge indicates a structural invariant violation: an edge whose
	// endpoint is not part of the node set. Unreachable through AddEdge/Build.
	ErrDanglingEdge = errors.New("core: edge references unknown node")
)

// Edge is a weighted connection From→To.
//
// ID is the sequential position of the edge in the graph's edge list and is
// what tells parallel edges apart. Weight may be negative or fractional.
type Edge struct {
	// ID is unique within the Graph (0, 1, 2, … in insertion order).
	ID int `json:"id"`

	// From is the source node ID.
	From string `json:"from"`

	// To is the destination node ID.
	To string `json:"to"`

	// Weight is the cost of the edge.
	Weight float64 `json:"weight"`
}

// IsLoop reports whether e is a self-loop (From == To).
func (e Edge) IsLoop() bool { return e.From == e.To }

// Other returns the endpoint of e opposite to id.
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// String renders e as "From→To(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%s→%s(%g)", e.From, e.To, e.Weight)
}

// Triple is one raw (from, to, weight) row as delivered by a parser.
type Triple struct {
	From   string
	To     string
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or bidirectional (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultigraph declares the graph a multigraph. Parallel edges are stored
// either way; the flag only changes how simple-graph algorithms (Prim) treat them.
func WithMultigraph(multi bool) GraphOption {
	return func(g *Graph) { g.multigraph = multi }
}

// Graph is the in-memory graph model.
//
// Nodes keep insertion order; edges are an append-only list. A Graph is
// built once per input and is read-only while algorithms run on it; a new
// input replaces the Graph wholesale. mu guards all fields so that a Graph
// can be shared between an HTTP handler and a running algorithm.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool
	multigraph bool

	// Storage
	nodes []string       // insertion order
	index map[string]int // node ID → position in nodes
	edges []Edge         // edge ID == position

	// incident[id] lists IDs of edges touching id (both endpoints for
	// undirected graphs, both ends recorded for directed graphs too), in
	// ascending edge ID order.
	incident map[string][]int
}

// NewGraph creates an empty Graph. By default it is undirected and simple.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:    make(map[string]int),
		incident: make(map[string][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Build constructs a Graph from triples in a single pass. The node set is
// derived from the endpoints in first-seen order, so every edge endpoint
// exists by construction.
// Complexity: O(len(triples))
func Build(triples []Triple, directed, multigraph bool) (*Graph, error) {
	g := NewGraph(WithDirected(directed), WithMultigraph(multigraph))
	for i, t := range triples {
		if t.From == "" || t.To == "" {
			return nil, fmt.Errorf("%w: row %d", ErrEmptyNodeID, i+1)
		}
		g.AddEdge(t.From, t.To, t.Weight)
	}

	return g, nil
}
