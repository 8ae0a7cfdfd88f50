package connectivity

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/unionfind/disjointset"
)

// Result summarizes one run over a Problem.
type Result struct {
	// Connections are the pairs that joined two separate components, in input order.
	Connections []Pair
	// Redundant counts pairs whose sites were already connected.
	Redundant int
	// Count is the number of components left.
	Count int
	// Sets are the final components, as returned by DisjointSet.Sets.
	Sets [][]int
}

type solveOptions struct {
	logger  *zap.Logger
	setOpts []disjointset.Option
}

// Option configures Solve.
type Option func(*solveOptions)

// WithLogger routes per-pair debug logs to l. A nil l keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *solveOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithUnionBySize enables union-by-size balancing in the underlying disjoint set.
func WithUnionBySize() Option {
	return func(o *solveOptions) {
		o.setOpts = append(o.setOpts, disjointset.WithUnionBySize())
	}
}

// Solve feeds every pair of prob into a fresh DisjointSet of prob.N sites.
//
// Complexity: O(P·α(N)) for P pairs, plus O(N) to collect Sets.
func Solve(prob *Problem, opts ...Option) Result {
	cfg := solveOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	ds := disjointset.New(prob.N, cfg.setOpts...)
	var res Result
	for _, p := range prob.Pairs {
		if !ds.Union(p.P, p.Q) {
			res.Redundant++
			cfg.logger.Debug("pair already connected",
				zap.Int("p", p.P), zap.Int("q", p.Q), zap.Int("line", p.Line))
			continue
		}
		res.Connections = append(res.Connections, p)
		cfg.logger.Debug("pair connected",
			zap.Int("p", p.P), zap.Int("q", p.Q), zap.Int("components", ds.Count()))
	}
	res.Count = ds.Count()
	res.Sets = ds.Sets()

	cfg.logger.Info("connectivity solved",
		zap.Int("sites", prob.N),
		zap.Int("pairs", len(prob.Pairs)),
		zap.Int("connections", len(res.Connections)),
		zap.Int("components", res.Count))

	return res
}
