package parse

import (
	"fmt"
	"strings"
)

// Flag is a shape flag that can be forced or left to detection.
type Flag int

const (
	// Auto lets core.Detect decide.
	Auto Flag = iota
	// Yes forces the flag on.
	Yes
	// No forces the flag off.
	No
)

// ParseFlag accepts "auto" (or ""), "true"/"yes"/"1" and "false"/"no"/"0".
func ParseFlag(s string) (Flag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "true", "yes", "1":
		return Yes, nil
	case "false", "no", "0":
		return No, nil
	default:
		return Auto, fmt.Errorf("parse: invalid flag %q (want auto, true or false)", s)
	}
}

// Resolve returns the forced value or, for Auto, detected.
func (f Flag) Resolve(detected bool) bool {
	switch f {
	case Yes:
		return true
	case No:
		return false
	default:
		return detected
	}
}

func (f Flag) String() string {
	switch f {
	case Yes:
		return "true"
	case No:
		return "false"
	default:
		return "auto"
	}
}

// Options controls how an edge list becomes a graph.
type Options struct {
	Directed   Flag
	Multigraph Flag
}
