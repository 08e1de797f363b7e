package builder

import "math/rand"

// config is the resolved set of Options for one Generate call.
type config struct {
	idFn     IDFn
	weightFn WeightFn
	rng      *rand.Rand
	directed bool
}

// Option customizes Generate.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithDirected makes the generated graph directed. Complete and RandomSparse
// then consider ordered pairs; the other topologies keep their edge list and
// only orient it.
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithIDScheme sets the node naming function. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *config) { c.idFn = fn }
}

// WithRand sets the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed installs a fresh random source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight function. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *config) { c.weightFn = fn }
}

// WithConstantWeight gives every edge weight w.
func WithConstantWeight(w float64) Option {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws integer weights uniformly from [lo, hi].
func WithUniformWeight(lo, hi int) Option {
	return WithWeightFn(UniformWeightFn(lo, hi))
}
