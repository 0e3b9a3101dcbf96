package engine

import (
	"context"
	"time"
)

// timeManager merges every way a turn can end: context cancellation,
// a move time deadline, a node limit and the host's TurnOver callback.
type timeManager struct {
	ctx      context.Context
	cancel   context.CancelFunc
	limits   LimitsType
	turnOver func() bool
	done     bool
}

func newTimeManager(ctx context.Context, start time.Time,
	limits LimitsType, turnOver func() bool) *timeManager {

	var cancel context.CancelFunc
	if limits.MoveTime > 0 {
		ctx, cancel = context.WithDeadline(ctx, start.Add(limits.MoveTime))
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	return &timeManager{
		ctx:      ctx,
		cancel:   cancel,
		limits:   limits,
		turnOver: turnOver,
	}
}

// IsDone is polled at every node. Once true it stays true.
func (tm *timeManager) IsDone() bool {
	if tm.done {
		return true
	}
	if tm.ctx.Err() != nil ||
		tm.turnOver != nil && tm.turnOver() {
		tm.done = true
	}
	return tm.done
}

func (tm *timeManager) OnNodesChanged(nodes int64) {
	if tm.limits.Nodes > 0 && nodes >= tm.limits.Nodes {
		tm.cancel()
	}
}

func (tm *timeManager) OnIterationComplete(line mainLine) {
	if tm.limits.Depth != 0 && line.depth >= tm.limits.Depth {
		tm.cancel()
		return
	}
	if line.score >= valueWin || line.score <= valueLoss {
		tm.cancel()
		return
	}
}

func (tm *timeManager) Close() {
	tm.cancel()
}
