package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	name string
	runs atomic.Int64
	ran  chan struct{}
}

func (j *countingJob) Name() string { return j.name }

func (j *countingJob) Run(_ context.Context) {
	j.runs.Add(1)
	select {
	case j.ran <- struct{}{}:
	default:
	}
}

func TestSchedulerFiresImmediatelyOnStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	job := &countingJob{name: "test-job", ran: make(chan struct{}, 1)}

	scheduler := NewSchedulerService(testLogger(t))
	scheduler.Register(job, time.Hour)
	require.NoError(t, scheduler.Start(ctx))
	defer scheduler.Stop()

	select {
	case <-job.ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not fire immediately on startup")
	}
}

func TestSchedulerStopsFiringAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	job := &countingJob{name: "test-job", ran: make(chan struct{}, 1)}

	scheduler := NewSchedulerService(testLogger(t))
	scheduler.Register(job, 50*time.Millisecond)
	require.NoError(t, scheduler.Start(ctx))

	select {
	case <-job.ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job never ran")
	}

	cancel()
	scheduler.Stop()

	runsAfterStop := job.runs.Load()
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, runsAfterStop, job.runs.Load(), "no runs may start after Stop")
}

func TestSchedulerRunsJobsIndependently(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := &countingJob{name: "first", ran: make(chan struct{}, 1)}
	second := &countingJob{name: "second", ran: make(chan struct{}, 1)}

	scheduler := NewSchedulerService(testLogger(t))
	scheduler.Register(first, time.Hour)
	scheduler.Register(second, time.Hour)
	require.NoError(t, scheduler.Start(ctx))
	defer scheduler.Stop()

	for _, job := range []*countingJob{first, second} {
		select {
		case <-job.ran:
		case <-time.After(2 * time.Second):
			t.Fatalf("job %s did not fire on startup", job.Name())
		}
	}
}
