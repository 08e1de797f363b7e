// Package logging builds the slog loggers used across stepgraph: a compact
// console handler for humans and the standard JSON handler for machines,
// plus an HTTP middleware that tags each request with a UUID request ID.
package logging
