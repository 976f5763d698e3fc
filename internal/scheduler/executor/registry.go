package executor

import (
	"context"
	"errors"
	"sync"

	"github.com/agily-hq/agily/internal/domain/job"
)

var ErrExecutorNotFound = errors.New("no executor registered for action")

// Executor applies one bulk action to a job's targets.
type Executor interface {
	Execute(ctx context.Context, j *job.BulkJob) error
	SupportsAction(action job.Action) bool
}

// ExecutorRegistry routes jobs to the executor registered for their action.
type ExecutorRegistry struct {
	mu        sync.RWMutex
	executors map[job.Action]Executor
}

func NewExecutorRegistry() *ExecutorRegistry {
	return &ExecutorRegistry{
		executors: make(map[job.Action]Executor),
	}
}

func (r *ExecutorRegistry) Register(action job.Action, e Executor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.executors[action] = e
}

func (r *ExecutorRegistry) Execute(ctx context.Context, j *job.BulkJob) error {
	r.mu.RLock()
	e, ok := r.executors[job.Action(j.Action)]
	r.mu.RUnlock()
	if !ok {
		return ErrExecutorNotFound
	}
	return e.Execute(ctx, j)
}
