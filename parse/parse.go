package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/stepgraph/core"
)

// Sentinel errors, always wrapped in a *LineError.
var (
	// ErrMalformedRow is a row that is neither "from to weight" nor a lone node.
	ErrMalformedRow = errors.New("parse: malformed row")

	// ErrBadWeight is a weight that is not a finite number.
	ErrBadWeight = errors.New("parse: weight is not a number")
)

// LineError ties a row error to its 1-based line number.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }

// Input is the raw content of an edge list.
type Input struct {
	// Triples are the edge rows in input order.
	Triples []core.Triple
	// Isolated are nodes listed on their own line, in input order.
	Isolated []string
}

// Read scans an edge list. Each non-blank line is either
//
//	from to weight    (fields separated by whitespace and/or commas)
//	node              (an isolated node)
//
// Blank lines and lines starting with '#' are skipped, as is anything after
// a '#' later in the line.
func Read(r io.Reader) (*Input, error) {
	in := &Input{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		text := raw
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ';' || unicode.IsSpace(c)
		})

		switch len(fields) {
		case 0:
			continue
		case 1:
			in.Isolated = append(in.Isolated, fields[0])
		case 3:
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, &LineError{Line: line, Text: raw, Err: ErrBadWeight}
			}
			in.Triples = append(in.Triples, core.Triple{From: fields[0], To: fields[1], Weight: w})
		default:
			return nil, &LineError{Line: line, Text: raw, Err: ErrMalformedRow}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: read: %w", err)
	}

	return in, nil
}

// EdgeList reads r and builds a graph. A shape flag left at Auto is decided
// by core.Detect; when directedness is detected as undirected, the mirror
// copy of every edge is dropped so each logical edge is stored once.
// The returned Shape is the one the graph was built with.
func EdgeList(r io.Reader, opts Options) (*core.Graph, core.Shape, error) {
	in, err := Read(r)
	if err != nil {
		return nil, core.Shape{}, err
	}

	return in.Graph(opts)
}

// Graph builds a graph from in; see EdgeList.
func (in *Input) Graph(opts Options) (*core.Graph, core.Shape, error) {
	detected := core.Detect(in.Triples)
	shape := core.Shape{
		Directed:   opts.Directed.Resolve(detected.Directed),
		Multigraph: opts.Multigraph.Resolve(detected.Multigraph),
	}

	triples := in.Triples
	if opts.Directed == Auto && !shape.Directed {
		triples = core.CollapseMirrored(triples)
	}
	g, err := core.Build(triples, shape.Directed, shape.Multigraph)
	if err != nil {
		return nil, core.Shape{}, err
	}
	for _, id := range in.Isolated {
		if err := g.AddNode(id); err != nil {
			return nil, core.Shape{}, err
		}
	}

	return g, shape, nil
}
