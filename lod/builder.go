package lod

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/attrlod/aps"
)

// weightChunk is the number of predictors handed to one weight task.
const weightChunk = 1024

const methodGenerate = "Generate"

// Builder owns one LoD structure and the parameter set it was built for.
// The four parts (parameters, predictors, level counts, ordering) are
// always replaced together.
//
// A Builder must not be used concurrently; run one per attribute pipeline
// or serialize access externally.
type Builder struct {
	cfg config

	params      aps.ParameterSet
	predictors  []Predictor
	levelCounts []int
	ordering    []int
	built       bool
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{cfg: newConfig(opts...)}
}

// Generate builds the structure for params over cloud and replaces the held
// one.
//
// Steps:
//  1. Preconditions (fatal, ErrContractViolation): minNodeSizeLog2 >= 0;
//     minNodeSizeLog2 > 0 only with scalable lifting; non-nil cloud with
//     totalPointCountMinus1+1 points.
//  2. params.Validate (ordinary error, aps.ErrInvalidParameters).
//  3. Searcher.Search on a private copy of params (errors wrap ErrSearchFailed).
//  4. CheckStructure on the result (fatal on failure).
//  5. Predictor.ComputeWeights on every predictor, across the worker pool.
//  6. Atomic replacement of the held state.
//
// On any error the previously held structure is kept unchanged.
func (b *Builder) Generate(params aps.ParameterSet, totalPointCountMinus1, minNodeSizeLog2 int, cloud Cloud) error {
	start := time.Now()
	if minNodeSizeLog2 < 0 {
		return contractf(methodGenerate, nil, "minNodeSizeLog2=%d is negative", minNodeSizeLog2)
	}
	if minNodeSizeLog2 > 0 && !params.ScalableLiftingEnabled() {
		return contractf(methodGenerate, nil, "minNodeSizeLog2=%d requires scalable lifting", minNodeSizeLog2)
	}
	if cloud == nil {
		return contractf(methodGenerate, nil, "nil cloud")
	}
	n := cloud.Len()
	if totalPointCountMinus1+1 != n {
		return contractf(methodGenerate, ErrPointCountMismatch, "signalled %d points, cloud has %d", totalPointCountMinus1+1, n)
	}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("%s: %w", methodGenerate, err)
	}

	snapshot := params.Clone()
	s, err := b.cfg.searcher.Search(snapshot.Clone(), cloud, minNodeSizeLog2, totalPointCountMinus1)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", methodGenerate, ErrSearchFailed, err)
	}
	if err := CheckStructure(s, n); err != nil {
		return contractf(methodGenerate, err, "searcher broke the structure invariants")
	}

	computeWeights(s.Predictors, b.cfg.workers)

	b.params = snapshot
	b.predictors = s.Predictors
	b.levelCounts = s.LevelCounts
	b.ordering = s.Ordering
	b.built = true

	b.cfg.logger.Debug("lod: structure generated",
		slog.Int("points", n),
		slog.Int("levels", len(s.LevelCounts)),
		slog.String("transform", snapshot.Transform.String()),
		slog.String("fingerprint", fmt.Sprintf("%016x", snapshot.Fingerprint())),
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// Ensure makes the held structure valid for params over cloud, rebuilding
// only when needed, and reports whether it rebuilt.
//
//   - params without LoD parameters need no structure: (false, nil).
//   - a held LoD structure for a cloud of the same size that IsReusable
//     accepts is kept: (false, nil).
//   - otherwise Generate runs: (true, nil) or (false, err).
//
// Ensure assumes cloud is the cloud the held structure was built for; only
// its size is checked.
func (b *Builder) Ensure(params aps.ParameterSet, totalPointCountMinus1, minNodeSizeLog2 int, cloud Cloud) (bool, error) {
	if !params.HasLodParameters() {
		return false, nil
	}
	if b.built && b.params.HasLodParameters() && cloud != nil && cloud.Len() == len(b.ordering) && b.IsReusable(params) {
		b.cfg.logger.Debug("lod: structure reused", slog.Int("points", len(b.ordering)))
		return false, nil
	}
	if err := b.Generate(params, totalPointCountMinus1, minNodeSizeLog2, cloud); err != nil {
		return false, err
	}

	return true, nil
}

// Built reports whether a structure is held.
func (b *Builder) Built() bool { return b.built }

// Params returns the parameter set the held structure was built for.
func (b *Builder) Params() aps.ParameterSet { return b.params }

// Predictors returns the held predictors in coding order. Do not modify.
func (b *Builder) Predictors() []Predictor { return b.predictors }

// LevelCounts returns the cumulative per-level point counts. Do not modify.
func (b *Builder) LevelCounts() []int { return b.levelCounts }

// Ordering returns the coding order as cloud indices. Do not modify.
func (b *Builder) Ordering() []int { return b.ordering }

// Structure returns the held structure. Do not modify.
func (b *Builder) Structure() Structure {
	return Structure{Predictors: b.predictors, LevelCounts: b.levelCounts, Ordering: b.ordering}
}

// computeWeights runs ComputeWeights on every predictor using at most
// workers goroutines. Each task owns a disjoint chunk of preds and cannot
// fail, so the group only bounds and joins the tasks.
func computeWeights(preds []Predictor, workers int) {
	if len(preds) <= weightChunk || workers == 1 {
		for i := range preds {
			preds[i].ComputeWeights()
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(preds); lo += weightChunk {
		part := preds[lo:min(lo+weightChunk, len(preds))]
		g.Go(func() error {
			for i := range part {
				part[i].ComputeWeights()
			}
			return nil
		})
	}
	// Wait is a join only: every task above returns nil.
	_ = g.Wait()
}
