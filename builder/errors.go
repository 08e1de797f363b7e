package builder

import "errors"

// Sentinel errors returned by constructors and Generate.
var (
	// ErrTooFewVertices indicates a size parameter below the topology's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrUnknownKind indicates Named was given a topology name it does not know.
	ErrUnknownKind = errors.New("builder: unknown kind")
)
