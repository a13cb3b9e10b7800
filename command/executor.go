package command

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Executor runs Cmd trees on a fixed-size worker pool and requests a render
// after each top-level submission completes. golang.org/x/sync/semaphore
// bounds task-body concurrency and golang.org/x/sync/errgroup fans out
// Batch's children.
type Executor struct {
	sem           *semaphore.Weighted
	requestRender func()

	ctx    context.Context
	cancel context.CancelFunc
}

// DefaultWorkers is the default worker-pool size.
const DefaultWorkers = 2

// NewExecutor returns an Executor bounding concurrent task-body execution
// to workers (DefaultWorkers if <= 0), calling requestRender after each
// top-level submission's signal point.
func NewExecutor(workers int, requestRender func()) *Executor {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Executor{
		sem:           semaphore.NewWeighted(int64(workers)),
		requestRender: requestRender,
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Close cancels every command still in flight and prevents further
// submissions from making progress. The executor cannot be reused after.
func (e *Executor) Close() { e.cancel() }

// Submit interprets cmd and returns a cancellation function for it.
// Canceling races every remaining suspension point in cmd's tree (sleeps,
// interval waits, and whatever the command body itself selects on);
// already-started task bodies run to completion.
func (e *Executor) Submit(cmd Cmd) context.CancelFunc {
	ctx, cancel := context.WithCancel(e.ctx)
	go e.run(ctx, cmd, true)
	return cancel
}

func (e *Executor) run(ctx context.Context, cmd Cmd, notify bool) {
	switch cmd.kind {
	case KindNone:
		return

	case KindPerform:
		e.acquireAndRun(ctx, func() { cmd.perform(ctx) })
		e.signal(notify)

	case KindSleep:
		if !e.sleep(ctx, cmd.duration) {
			return
		}
		if cmd.then == nil || cmd.then.IsNone() {
			e.signal(notify)
			return
		}
		e.run(ctx, *cmd.then, notify)

	case KindBatch:
		g, gctx := errgroup.WithContext(ctx)
		for _, child := range cmd.children {
			child := child
			g.Go(func() error {
				e.run(gctx, child, false)
				return nil
			})
		}
		_ = g.Wait()
		e.signal(notify)

	case KindSequence:
		for _, child := range cmd.children {
			e.run(ctx, child, false)
			if ctx.Err() != nil {
				return
			}
		}
		e.signal(notify)

	case KindTick:
		if !e.sleep(ctx, cmd.duration) {
			return
		}
		e.acquireAndRun(ctx, func() { cmd.callback(time.Now()) })
		e.signal(notify)

	case KindInterval:
		if !e.sleep(ctx, nextBoundary(cmd.duration)) {
			return
		}
		e.acquireAndRun(ctx, func() { cmd.callback(time.Now()) })
		e.signal(notify)
	}
}

func (e *Executor) signal(notify bool) {
	if notify {
		e.requestRender()
	}
}

// sleep waits d or returns false if ctx is canceled first.
func (e *Executor) sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// acquireAndRun bounds f's execution to the worker pool's capacity. A
// canceled ctx abandons the acquire itself, so a task never starts once
// its command has been canceled.
func (e *Executor) acquireAndRun(ctx context.Context, f func()) {
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return
	}
	defer e.sem.Release(1)
	f()
}

// nextBoundary returns the wait until the next multiple of d since the Unix
// epoch, aligning interval firings to wall-clock boundaries (e.g. a 1s
// interval fires on whole seconds) rather than to whenever Interval was
// submitted.
func nextBoundary(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	now := time.Now().UnixNano()
	period := int64(d)
	remainder := now % period
	if remainder == 0 {
		return d
	}
	return time.Duration(period - remainder)
}
