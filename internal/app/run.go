package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vk/tickseq/internal/ctxlog"
	"github.com/vk/tickseq/sequencer"
)

// ErrTickLimit is returned when a run is still active after MaxTicks ticks.
var ErrTickLimit = errors.New("tick limit reached")

// Run executes the script until every action has completed, an action
// fails, the tick limit is hit, or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithRunID(ctxlog.WithLogger(ctx, a.logger), a.runID)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.config.HealthcheckPort)
		defer a.closeHealthcheckServer()
	}

	seq, err := a.buildSequencer(ctx)
	if err != nil {
		return fmt.Errorf("failed to build run graph: %w", err)
	}
	if seq.NodeCount() == 0 {
		logger.Warn("No actions found in script, execution not required.")
		return nil
	}

	logger.Info("🚀 Starting tick loop...", "actions", seq.NodeCount(), "tick", a.config.Tick.String())
	ticks, err := a.loop(ctx, seq)
	if err != nil {
		logger.Error("Run aborted.", "ticks", ticks, "completed", seq.CompletedCount(), "error", err)
		return fmt.Errorf("execution failed: %w", err)
	}
	logger.Info("🏁 Execution finished.", "ticks", ticks, "completed", seq.CompletedCount())
	return nil
}

// loop drives seq one tick at a time: drain the ready queue, then give
// every active action one Tick. It returns the number of ticks run.
func (a *App) loop(ctx context.Context, seq *sequencer.Sequencer[step]) (int, error) {
	logger := ctxlog.FromContext(ctx)

	var pace <-chan time.Time
	if a.config.Tick > 0 {
		ticker := time.NewTicker(a.config.Tick)
		defer ticker.Stop()
		pace = ticker.C
	}

	tick := 0
	for seq.IsActive() {
		if a.config.MaxTicks > 0 && tick >= a.config.MaxTicks {
			return tick, fmt.Errorf("%w: still active after %d ticks", ErrTickLimit, tick)
		}
		if err := awaitTick(ctx, pace, tick == 0); err != nil {
			return tick, err
		}
		tick++
		a.metrics.ticks.Inc()

		seq.DrainQueue(func(key sequencer.Key, s step) {
			logger.Info("▶️ Action started.", "action", s.id, "key", key, "tick", tick)
			a.metrics.started.WithLabelValues(s.kind).Inc()
		})

		var tickErr error
		seq.ForEachActive(func(key sequencer.Key, s *step) bool {
			if tickErr != nil {
				return false
			}
			done, err := s.action.Tick(ctx)
			if err != nil {
				tickErr = fmt.Errorf("action '%s' failed on tick %d: %w", s.id, tick, err)
				return false
			}
			if done {
				logger.Info("✅ Action completed.", "action", s.id, "key", key, "tick", tick)
				a.metrics.completed.WithLabelValues(s.kind).Inc()
			}
			return done
		})

		a.metrics.queued.Set(float64(seq.QueuedCount()))
		a.metrics.active.Set(float64(seq.ActiveCount()))
		if tickErr != nil {
			return tick, tickErr
		}
	}
	return tick, nil
}

// awaitTick blocks until the next tick is due. The first tick never waits.
func awaitTick(ctx context.Context, pace <-chan time.Time, first bool) error {
	if pace == nil || first {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-pace:
		return nil
	}
}
