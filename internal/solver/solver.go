// Package solver runs decoding and reconstruction for whole input cases.
package solver

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/dbsmedya/gosecret/internal/config"
	"github.com/dbsmedya/gosecret/internal/loader"
	"github.com/dbsmedya/gosecret/internal/logger"
	"github.com/dbsmedya/gosecret/internal/secret"
	"github.com/dbsmedya/gosecret/internal/share"
)

// Options controls how cases are solved.
type Options struct {
	Selector      secret.Selector
	CrossValidate bool
	Strict        bool
	Workers       int
}

// OptionsFromConfig builds Options from the reconstruction settings.
func OptionsFromConfig(cfg config.ReconstructionConfig) (Options, error) {
	sel, err := secret.SelectorByName(cfg.Selector)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Selector:      sel,
		CrossValidate: cfg.CrossValidate || cfg.Strict,
		Strict:        cfg.Strict,
		Workers:       cfg.Workers,
	}, nil
}

// Result is the outcome of one case. Err is set when the case produced no
// secret; Batch is set whenever the records could be decoded.
type Result struct {
	Case           string
	N              int
	K              int
	Batch          *share.Batch
	Reconstruction *secret.Reconstruction
	Mismatches     []secret.Mismatch
	Err            error
}

// Secret returns the reconstructed secret, or nil.
func (r *Result) Secret() *big.Int {
	if r.Err != nil || r.Reconstruction == nil {
		return nil
	}
	return r.Reconstruction.Secret
}

// Available returns the number of successfully decoded shares.
func (r *Result) Available() int {
	if r.Batch == nil {
		return 0
	}
	return r.Batch.PointSet().Len()
}

// Sufficient reports whether enough shares decoded to meet the threshold.
func (r *Result) Sufficient() bool {
	return r.Available() >= r.K
}

// Solver decodes and reconstructs cases. It is safe for concurrent use.
type Solver struct {
	opts Options
	rec  *secret.Reconstructor
	log  *logger.Logger
}

// New creates a Solver.
func New(opts Options, log *logger.Logger) *Solver {
	if opts.Selector == nil {
		opts.Selector = secret.FirstK{}
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Solver{
		opts: opts,
		rec:  secret.New(secret.WithSelector(opts.Selector)),
		log:  log,
	}
}

// Options returns the effective options.
func (s *Solver) Options() Options {
	return s.opts
}

// Inspect decodes every record of c without reconstructing.
func (s *Solver) Inspect(c *loader.Case) *Result {
	log := s.log.WithCase(c.Name)
	res := &Result{Case: c.Name, N: c.N, K: c.K}

	batch, err := share.DecodeAll(c.N, c.K, c.Records)
	if err != nil {
		res.Err = err
		log.Errorw("Failed to decode records", "error", err)
		return res
	}
	res.Batch = batch

	for _, f := range batch.Failures() {
		log.WithShare(f.Index, f.Base).Warnw("Share excluded", "error", f.Err)
	}
	log.Debugw("Decoded shares",
		"records", batch.Len(),
		"available", batch.PointSet().Len(),
		"k", c.K)
	return res
}

// Solve decodes c and reconstructs its secret.
func (s *Solver) Solve(c *loader.Case) *Result {
	res := s.Inspect(c)
	if res.Err != nil {
		return res
	}
	log := s.log.WithCase(c.Name)

	rec, err := s.rec.Reconstruct(res.Batch.PointSet(), c.K)
	if err != nil {
		res.Err = err
		log.Errorw("Reconstruction failed", "error", err)
		return res
	}

	if s.opts.CrossValidate {
		mismatches, verr := rec.Verify()
		res.Mismatches = mismatches
		for _, m := range mismatches {
			log.WithIndex(m.X).Warnw("Share inconsistent with reconstructed polynomial",
				"got", m.Got.String(),
				"expected", m.Expected.RatString())
		}
		if verr != nil && (s.opts.Strict || !errors.Is(verr, secret.ErrInconsistentPoint)) {
			res.Err = verr
			return res
		}
	}

	res.Reconstruction = rec
	log.Infow("Secret reconstructed",
		"selector", s.opts.Selector.Name(),
		"selected", rec.SelectedIndices())
	return res
}

// SolveAll solves cases concurrently, bounded by Workers. Results are in
// input order. A failing case does not stop the others; only cancellation
// of ctx does, in which case the error is returned.
func (s *Solver) SolveAll(ctx context.Context, cases []*loader.Case) ([]*Result, error) {
	return s.run(ctx, cases, s.Solve)
}

// InspectAll decodes cases concurrently, like SolveAll.
func (s *Solver) InspectAll(ctx context.Context, cases []*loader.Case) ([]*Result, error) {
	return s.run(ctx, cases, s.Inspect)
}

func (s *Solver) run(ctx context.Context, cases []*loader.Case, fn func(*loader.Case) *Result) ([]*Result, error) {
	results := make([]*Result, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)

	for i, c := range cases {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = fn(c)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("solving interrupted: %w", err)
	}
	return results, nil
}

// Failed reports whether any result carries an error.
func Failed(results []*Result) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}
