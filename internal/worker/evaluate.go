package worker

import (
	stderrors "errors"

	"github.com/lgbarn/variant-core/internal/chess"
	"github.com/lgbarn/variant-core/internal/config"
	"github.com/lgbarn/variant-core/internal/errors"
)

// SightFunc returns a ProcessFunc that evaluates queries against b. Queries
// never mutate the board, so one board can be shared by every worker as
// long as nobody writes to it during the batch.
//
// A query whose source square is empty reports ErrEmptySquare. A legality
// check on a board without exactly one king of the mover's colour reports
// the *errors.RuleError that the check panicked with; any other panic is
// re-raised.
func SightFunc(b *chess.Board) ProcessFunc {
	return func(item WorkItem) (res Result) {
		res = Result{Query: item.Query, Index: item.Index}

		bp, ok := b.PieceAt(item.Query.From)
		if !ok {
			res.Error = &errors.RuleError{
				Err:      errors.ErrEmptySquare,
				Op:       "sight",
				Location: item.Query.From.String(),
			}
			return res
		}

		defer func() {
			r := recover()
			if r == nil {
				return
			}
			var ruleErr *errors.RuleError
			if err, ok := r.(error); ok && stderrors.As(err, &ruleErr) {
				res.Sight = chess.Sight{}
				res.Error = ruleErr
				return
			}
			panic(r)
		}()

		if item.Query.Attack {
			res.Sight = bp.AttackSight(item.Query.To, item.Query.CheckLegal)
		} else {
			res.Sight = bp.MoveSight(item.Query.To, item.Query.CheckLegal)
		}
		return res
	}
}

// Evaluate runs every query against b on a pool sized by cfg and returns
// the results in query order. A nil cfg uses the defaults. Per-query
// failures are reported in Result.Error; the returned error is only set
// for an invalid configuration.
func Evaluate(b *chess.Board, queries []Query, cfg *config.QueryConfig) ([]Result, error) {
	return evaluate(b, queries, cfg, false)
}

// EvaluateUntilError is Evaluate, except that the first failing query stops
// the pool. Queries still queued are drained without being evaluated and
// keep a zero Result. The failure is returned with its query index.
func EvaluateUntilError(b *chess.Board, queries []Query, cfg *config.QueryConfig) ([]Result, error) {
	return evaluate(b, queries, cfg, true)
}

func evaluate(b *chess.Board, queries []Query, cfg *config.QueryConfig, stopOnError bool) ([]Result, error) {
	if cfg == nil {
		cfg = config.NewQueryConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "evaluate")
	}

	pool := NewPool(SightFunc(b), WithWorkers(cfg.Workers), WithBufferSize(cfg.BufferSize))
	pool.Start()

	go func() {
		for i, q := range queries {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{Query: q, Index: i})
		}
		pool.Close()
	}()

	var firstErr error
	results := make([]Result, len(queries))
	for res := range pool.Results() {
		results[res.Index] = res
		if stopOnError && res.Error != nil && firstErr == nil {
			firstErr = errors.Wrapf(res.Error, "query %d", res.Index)
			pool.Stop()
		}
	}
	return results, firstErr
}
