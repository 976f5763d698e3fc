package queue

import (
	"sync"

	"github.com/agily-hq/agily/internal/domain/job"
)

// JobQueue is a mutex-guarded FIFO of pending bulk jobs.
type JobQueue struct {
	mu   sync.Mutex
	jobs []*job.BulkJob
}

func NewJobQueue() *JobQueue {
	return &JobQueue{}
}

func (q *JobQueue) Push(j *job.BulkJob) {
	if j == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, j)
}

func (q *JobQueue) Pop() *job.BulkJob {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.jobs) == 0 {
		return nil
	}
	j := q.jobs[0]
	q.jobs = q.jobs[1:]
	return j
}

func (q *JobQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}
