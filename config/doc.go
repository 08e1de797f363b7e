// Package config loads stepgraph settings with koanf: built-in defaults, an
// optional stepgraph.toml, STEPGRAPH_* environment variables and finally
// command-line flags, each layer overriding the previous one.
package config
