package scheduler

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	name  string
	runs  atomic.Int64
	block chan struct{}
	err   error
}

func (j *countingJob) Name() string { return j.name }

func (j *countingJob) Run(ctx context.Context) error {
	j.runs.Add(1)
	if j.block != nil {
		select {
		case <-j.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return j.err
}

func newTestScheduler(timeout time.Duration) *Scheduler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(time.UTC, timeout, logger)
}

func TestScheduler_RegisterInvalidSpec(t *testing.T) {
	s := newTestScheduler(time.Second)

	err := s.Register("not a cron spec", &countingJob{name: "bad"})

	assert.Error(t, err)
}

func TestScheduler_RunsRegisteredJob(t *testing.T) {
	s := newTestScheduler(time.Second)
	job := &countingJob{name: "every-second"}

	// @every keeps the test fast without waiting for a minute boundary.
	// Delays below one second are rounded up to a second, so 1s is the
	// shortest usable interval.
	require.NoError(t, s.Register("@every 1s", job))

	s.Start()
	defer func() { <-s.Stop().Done() }()

	assert.Eventually(t, func() bool {
		return job.runs.Load() >= 2
	}, 4*time.Second, 50*time.Millisecond)
}

func TestScheduler_SkipsOverlappingRuns(t *testing.T) {
	s := newTestScheduler(10 * time.Second)
	job := &countingJob{name: "slow", block: make(chan struct{})}

	require.NoError(t, s.Register("@every 1s", job))

	s.Start()

	// Wait for the first run to start, then hold it across several further
	// trigger opportunities. Those triggers must be skipped, not queued.
	require.Eventually(t, func() bool {
		return job.runs.Load() == 1
	}, 3*time.Second, 50*time.Millisecond)
	time.Sleep(2500 * time.Millisecond)

	stopped := s.Stop()
	close(job.block)
	<-stopped.Done()

	assert.Equal(t, int64(1), job.runs.Load())
}

func TestScheduler_JobErrorDoesNotStopSchedule(t *testing.T) {
	s := newTestScheduler(time.Second)
	job := &countingJob{name: "flaky", err: stderrors.New("cycle failed")}

	require.NoError(t, s.Register("@every 1s", job))

	s.Start()
	defer func() { <-s.Stop().Done() }()

	assert.Eventually(t, func() bool {
		return job.runs.Load() >= 2
	}, 4*time.Second, 50*time.Millisecond)
}
