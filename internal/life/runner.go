package life

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/geometry/internal/config"
	"github.com/zeusync/geometry/internal/observability/log"
)

// Runner executes every scenario of a config, at most Concurrency at a time.
// Each scenario owns its board, so runs share nothing but the logger.
type Runner struct {
	cfg    *config.Config
	logger log.Log
}

func NewRunner(cfg *config.Config, logger log.Log) *Runner {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Runner{cfg: cfg, logger: logger}
}

// RunAll returns results in scenario order. The first failing scenario
// cancels the rest.
func (r *Runner) RunAll(ctx context.Context) ([]Result, error) {
	results := make([]Result, len(r.cfg.Scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.cfg.Concurrency, 1))

	for i, s := range r.cfg.Scenarios {
		g.Go(func() error {
			sim, err := New(s, r.logger)
			if err != nil {
				return err
			}
			res, err := sim.Run(ctx)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		r.logger.Error("scenario run failed", log.Error(err))
		return nil, err
	}
	return results, nil
}
