// Command stepgraph runs graph algorithms on an edge list, prints their
// step traces, or serves them over HTTP for animated playback.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "stepgraph:", err)
		os.Exit(1)
	}
}
