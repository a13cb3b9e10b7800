package command

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExecutor(t *testing.T) (*Executor, func() int) {
	t.Helper()
	var count int64
	e := NewExecutor(DefaultWorkers, func() { atomic.AddInt64(&count, 1) })
	t.Cleanup(e.Close)
	return e, func() int { return int(atomic.LoadInt64(&count)) }
}

func TestExecutorPerformSignalsOnce(t *testing.T) {
	e, renders := newTestExecutor(t)
	var ran int32

	e.Submit(Perform(func(Canceler) { atomic.AddInt32(&ran, 1) }))

	require.Eventually(t, func() bool { return atomic.LoadInt32(&ran) == 1 }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return renders() == 1 }, time.Second, time.Millisecond)
}

func TestExecutorNoneSignalsNothing(t *testing.T) {
	e, renders := newTestExecutor(t)
	e.Submit(None())
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, renders())
}

func TestExecutorBatchSignalsOnceAfterAll(t *testing.T) {
	e, renders := newTestExecutor(t)
	var wg sync.WaitGroup
	wg.Add(3)

	e.Submit(Batch(
		Perform(func(Canceler) { wg.Done() }),
		Perform(func(Canceler) { wg.Done() }),
		Perform(func(Canceler) { wg.Done() }),
	))

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("batch children did not all run")
	}
	require.Eventually(t, func() bool { return renders() == 1 }, time.Second, time.Millisecond)
}

func TestExecutorSequenceOrdersChildren(t *testing.T) {
	e, renders := newTestExecutor(t)
	var mu sync.Mutex
	var order []int

	e.Submit(Sequence(
		Perform(func(Canceler) { mu.Lock(); order = append(order, 1); mu.Unlock() }),
		Perform(func(Canceler) { mu.Lock(); order = append(order, 2); mu.Unlock() }),
		Perform(func(Canceler) { mu.Lock(); order = append(order, 3); mu.Unlock() }),
	))

	require.Eventually(t, func() bool { return renders() == 1 }, time.Second, time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestExecutorSleepThenChains(t *testing.T) {
	e, renders := newTestExecutor(t)
	var ran int32

	e.Submit(Sleep(5*time.Millisecond, Perform(func(Canceler) { atomic.AddInt32(&ran, 1) })))

	require.Eventually(t, func() bool { return atomic.LoadInt32(&ran) == 1 }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return renders() == 1 }, time.Second, time.Millisecond)
}

func TestExecutorTickReceivesTimestamp(t *testing.T) {
	e, _ := newTestExecutor(t)
	fired := make(chan time.Time, 1)

	before := time.Now()
	e.Submit(Tick(5*time.Millisecond, func(ts time.Time) { fired <- ts }))

	select {
	case ts := <-fired:
		assert.True(t, ts.After(before))
	case <-time.After(time.Second):
		t.Fatal("tick never fired")
	}
}

func TestExecutorCancelAbandonsSleep(t *testing.T) {
	e, renders := newTestExecutor(t)
	var ran int32

	cancel := e.Submit(Sleep(200*time.Millisecond, Perform(func(Canceler) { atomic.AddInt32(&ran, 1) })))
	cancel()

	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&ran))
	assert.Equal(t, 0, renders())
}

func TestNextBoundaryAlignsToEpoch(t *testing.T) {
	d := 100 * time.Millisecond
	wait := nextBoundary(d)
	assert.True(t, wait > 0 && wait <= d)
}
