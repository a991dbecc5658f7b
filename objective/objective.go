package objective

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/forest/edgeweight"
	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/insideoutside"
	"github.com/katalvlaran/forest/semiring"
)

var (
	// ErrNilForest indicates an instance without a full or reference forest.
	ErrNilForest = errors.New("objective: nil forest")

	// ErrZeroPartition indicates a forest whose total weight is zero (an
	// empty or fully pruned reference forest) or overflowed.
	ErrZeroPartition = errors.New("objective: partition function is zero or not finite")
)

// Instance is one training example.
type Instance struct {
	Name      string
	Full      *hypergraph.Hypergraph
	Reference *hypergraph.Hypergraph
}

// Result is the corpus objective at one weight vector.
type Result struct {
	NegLogLikelihood float64
	Gradient         []float64
	Instances        int
}

// Objective evaluates the CRF loss. Safe for concurrent use.
type Objective struct {
	logger  *zap.Logger
	metrics *Metrics
	workers int
	l2      float64
}

// Option configures an Objective.
type Option func(*Objective)

// WithLogger sets the logger. nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Objective) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithMetrics records evaluations in m. nil disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Objective) {
		o.metrics = m
	}
}

// WithWorkers bounds the number of instances evaluated concurrently.
// Values below 1 panic.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("objective: WithWorkers(%d): need n ≥ 1", n))
	}
	return func(o *Objective) {
		o.workers = n
	}
}

// WithL2 adds (c/2)·‖w‖² to the loss. Negative c panics.
func WithL2(c float64) Option {
	if c < 0 || math.IsNaN(c) {
		panic(fmt.Sprintf("objective: WithL2(%g): need c ≥ 0", c))
	}
	return func(o *Objective) {
		o.l2 = c
	}
}

// New returns an Objective with a no-op logger, GOMAXPROCS workers and no
// regularization, then applies opts in order.
func New(opts ...Option) *Objective {
	o := &Objective{
		logger:  zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Evaluate returns the summed negative log-likelihood and its gradient with
// respect to weights over corpus. The gradient has len(weights) entries;
// features with IDs beyond that are ignored.
//
// The first failing instance cancels the rest and its error is returned.
func (o *Objective) Evaluate(ctx context.Context, weights []float64, corpus []Instance) (Result, error) {
	start := time.Now()
	parts := make([]Result, len(corpus))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range corpus {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			began := time.Now()
			r, err := evaluateInstance(weights, &corpus[i])
			if err != nil {
				return fmt.Errorf("Evaluate: instance %d (%s): %w", i, corpus[i].Name, err)
			}
			o.logger.Debug("instance evaluated",
				zap.Int("index", i),
				zap.String("name", corpus[i].Name),
				zap.Float64("nll", r.NegLogLikelihood),
			)
			o.metrics.recordInstance(time.Since(began).Seconds())
			parts[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		o.logger.Warn("evaluation failed", zap.Error(err))
		o.metrics.recordEvaluation(false, 0)
		return Result{}, err
	}

	// Sum in corpus order.
	total := Result{Gradient: make([]float64, len(weights)), Instances: len(corpus)}
	for _, r := range parts {
		total.NegLogLikelihood += r.NegLogLikelihood
		floats.Add(total.Gradient, r.Gradient)
	}
	if o.l2 > 0 && len(weights) > 0 {
		total.NegLogLikelihood += 0.5 * o.l2 * floats.Dot(weights, weights)
		floats.AddScaled(total.Gradient, o.l2, weights)
	}

	o.metrics.recordEvaluation(true, total.NegLogLikelihood)
	o.logger.Info("objective evaluated",
		zap.Int("instances", total.Instances),
		zap.Float64("nll", total.NegLogLikelihood),
		zap.Float64("grad_norm", gradNorm(total.Gradient)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return total, nil
}

// evaluateInstance computes log Z and E[f] for both forests of inst.
func evaluateInstance(weights []float64, inst *Instance) (Result, error) {
	if inst.Full == nil || inst.Reference == nil {
		return Result{}, ErrNilForest
	}
	logZFull, eFull, err := logPartition(weights, inst.Full)
	if err != nil {
		return Result{}, fmt.Errorf("full: %w", err)
	}
	logZRef, eRef, err := logPartition(weights, inst.Reference)
	if err != nil {
		return Result{}, fmt.Errorf("reference: %w", err)
	}

	grad := eFull.Dense(len(weights))
	floats.Sub(grad, eRef.Dense(len(weights)))

	return Result{NegLogLikelihood: logZFull - logZRef, Gradient: grad, Instances: 1}, nil
}

// logPartition returns log Z and the expected feature vector of h under
// p(e) = exp(f(e)·weights). Both passes stay in the log domain, so long
// derivations do not underflow.
func logPartition(weights []float64, h *hypergraph.Hypergraph) (float64, semiring.Vector, error) {
	io := insideoutside.NewNormalized[semiring.LogProb]()
	logZ := float64(io.Compute(h, edgeweight.LinearLog(weights)))
	if math.IsInf(logZ, 0) || math.IsNaN(logZ) {
		return 0, nil, fmt.Errorf("logZ=%g: %w", logZ, ErrZeroPartition)
	}
	mean := insideoutside.Expect(io, h, edgeweight.LinearLogFeatures(weights)).Vector()

	return logZ, mean, nil
}

func gradNorm(g []float64) float64 {
	if len(g) == 0 {
		return 0
	}
	return floats.Norm(g, 2)
}
