// Package parse turns a text edge list into a core.Graph.
//
// Rows are "from to weight", separated by whitespace, commas or semicolons.
// A row holding a single token declares an isolated node. Errors carry the
// originating line number in a *LineError wrapping ErrMalformedRow or
// ErrBadWeight.
//
// Shape flags default to Auto: core.Detect decides directedness and
// multiplicity, and a mirror-listed undirected input is collapsed so every
// logical edge is stored once.
package parse
