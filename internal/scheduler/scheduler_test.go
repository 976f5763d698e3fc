package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/agily-hq/agily/internal/domain/job"
	"github.com/agily-hq/agily/internal/scheduler/executor"
)

// MockBulkExecutor for testing
type MockBulkExecutor struct {
	executeErr bool
	executed   []uint
}

func (m *MockBulkExecutor) Execute(ctx context.Context, j *job.BulkJob) error {
	m.executed = append(m.executed, j.ID)
	if m.executeErr {
		return errors.New("mock execute error")
	}
	return nil
}

func (m *MockBulkExecutor) SupportsAction(action job.Action) bool {
	return true
}

func TestNewScheduler(t *testing.T) {
	registry := executor.NewExecutorRegistry()
	sched := NewScheduler(registry, nil, 0)

	if sched == nil {
		t.Fatal("expected non-nil scheduler")
	}
	if sched.jobQueue == nil {
		t.Fatal("expected jobQueue to be initialized")
	}
	if sched.running {
		t.Fatal("expected scheduler not running initially")
	}
}

func TestEnqueueJob(t *testing.T) {
	registry := executor.NewExecutorRegistry()
	sched := NewScheduler(registry, nil, 0)

	sched.EnqueueJob(&job.BulkJob{ID: 1})
	sched.EnqueueJob(&job.BulkJob{ID: 2})

	if sched.GetQueueSize() != 2 {
		t.Fatalf("expected 2 jobs, got %d", sched.GetQueueSize())
	}
}

func TestProcessQueue_Completes(t *testing.T) {
	registry := executor.NewExecutorRegistry()
	exec := &MockBulkExecutor{}
	registry.Register(job.ActionSetState, exec)

	sched := NewScheduler(registry, nil, 0)
	j := &job.BulkJob{ID: 1, Action: string(job.ActionSetState), Status: string(job.StatusQueued)}
	sched.EnqueueJob(j)

	sched.processQueue(context.Background())

	if len(exec.executed) != 1 || exec.executed[0] != 1 {
		t.Fatalf("expected job 1 to execute, got %v", exec.executed)
	}
	if j.Status != string(job.StatusCompleted) {
		t.Fatalf("expected completed, got %s", j.Status)
	}
	if j.StartedAt == nil || j.FinishedAt == nil {
		t.Fatal("expected started/finished timestamps")
	}
	if sched.GetQueueSize() != 0 {
		t.Fatal("expected drained queue")
	}
}

func TestProcessQueue_ExecutorError(t *testing.T) {
	registry := executor.NewExecutorRegistry()
	registry.Register(job.ActionSetState, &MockBulkExecutor{executeErr: true})

	sched := NewScheduler(registry, nil, 0)
	j := &job.BulkJob{ID: 1, Action: string(job.ActionSetState)}
	sched.EnqueueJob(j)

	sched.processQueue(context.Background())

	if j.Status != string(job.StatusFailed) {
		t.Fatalf("expected failed, got %s", j.Status)
	}
	if j.Error == "" {
		t.Fatal("expected error message on job")
	}
}

func TestProcessQueue_UnknownAction(t *testing.T) {
	registry := executor.NewExecutorRegistry()

	sched := NewScheduler(registry, nil, 0)
	j := &job.BulkJob{ID: 1, Action: "nonsense"}
	sched.EnqueueJob(j)

	sched.processQueue(context.Background())

	if j.Status != string(job.StatusFailed) {
		t.Fatalf("expected failed, got %s", j.Status)
	}
}

func TestEnqueueJob_TracksSeenIDs(t *testing.T) {
	registry := executor.NewExecutorRegistry()
	registry.Register(job.ActionSetState, &MockBulkExecutor{})

	sched := NewScheduler(registry, nil, 0)
	j := &job.BulkJob{ID: 7, Action: string(job.ActionSetState)}
	sched.EnqueueJob(j)

	if !sched.enqueued[7] {
		t.Fatal("expected job 7 to be tracked")
	}

	sched.processQueue(context.Background())

	if sched.enqueued[7] {
		t.Fatal("expected job 7 to be released after processing")
	}
}
