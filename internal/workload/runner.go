package workload

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xvzc/ordtree/internal/appctx"
	"github.com/xvzc/ordtree/internal/compare"
	"github.com/xvzc/ordtree/internal/datastruct/tree"
)

// Report counts the outcome of every applied operation.
type Report struct {
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
	Removed    int `json:"removed"`
	Missing    int `json:"missing"`
	Hits       int `json:"hits"`
	Misses     int `json:"misses"`
}

type Runner struct {
	set      tree.OrderedSet[string]
	strategy *compare.Strategy
	logger   zerolog.Logger
}

func NewRunner(
	set tree.OrderedSet[string],
	strategy *compare.Strategy,
	logger zerolog.Logger,
) *Runner {
	return &Runner{
		set:      set,
		strategy: strategy,
		logger:   logger,
	}
}

// Run validates every key first and applies nothing if any key is
// rejected. The context is checked between operations. Run stops at the
// first op during which the comparator failed.
func (r *Runner) Run(ctx context.Context, ops []Op) (Report, error) {
	var rep Report

	keys := make([]string, len(ops))
	for i, op := range ops {
		keys[i] = op.Key
	}
	if err := r.strategy.ValidateAll(keys); err != nil {
		return rep, err
	}

	base := r.logger.With().Ctx(ctx)
	if src, ok := appctx.SourceFrom(ctx); ok {
		base = base.Str("source", src)
	}
	baseLogger := base.Logger()

	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		logger := baseLogger.With().Str("op", op.Kind.String()).Str("key", op.Key).Logger()

		switch op.Kind {
		case OpInsert:
			if r.set.Insert(op.Key) {
				rep.Inserted++
				logger.Debug().Msg("inserted")
			} else {
				rep.Duplicates++
				logger.Debug().Msg("already present")
			}
		case OpRemove:
			if r.set.Remove(op.Key) {
				rep.Removed++
				logger.Debug().Msg("removed")
			} else {
				rep.Missing++
				logger.Debug().Msg("not present")
			}
		case OpContains:
			if r.set.Contains(op.Key) {
				rep.Hits++
				logger.Info().Msg("found")
			} else {
				rep.Misses++
				logger.Info().Msg("not found")
			}
		default:
			return rep, fmt.Errorf("line %d: unknown op kind %d", op.Line, op.Kind)
		}

		// A failed comparison leaves the order undefined; stop before the
		// next op relies on it.
		if err := r.strategy.Err(); err != nil {
			return rep, fmt.Errorf("%s comparator: %s %q: %w", r.strategy.Name, op.Kind, op.Key, err)
		}
	}

	return rep, nil
}
