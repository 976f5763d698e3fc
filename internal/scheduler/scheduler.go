package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/agily-hq/agily/internal/domain/job"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/internal/scheduler/executor"
	"github.com/agily-hq/agily/internal/scheduler/queue"
)

// Scheduler drains queued bulk jobs on a poll interval.
type Scheduler struct {
	jobQueue *queue.JobQueue
	registry *executor.ExecutorRegistry
	running  bool
	jobRepo  repository.JobRepo
	interval time.Duration
	enqueued map[uint]bool
}

func NewScheduler(registry *executor.ExecutorRegistry, jobRepo repository.JobRepo, interval time.Duration) *Scheduler {
	return &Scheduler{
		jobQueue: queue.NewJobQueue(),
		registry: registry,
		running:  false,
		jobRepo:  jobRepo,
		interval: interval,
		enqueued: make(map[uint]bool),
	}
}

// Start begins polling. It blocks until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.running = true
	log.Println("Scheduler started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.running = false
			log.Println("Scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.syncQueued()
			s.processQueue(ctx)
		}
	}
}

// EnqueueJob adds a job to the in-memory queue.
func (s *Scheduler) EnqueueJob(j *job.BulkJob) {
	s.jobQueue.Push(j)
	if j != nil {
		s.enqueued[j.ID] = true
	}
}

// processQueue drains everything currently queued, marking each job's
// outcome on the row so status polls and the job stream see it.
func (s *Scheduler) processQueue(ctx context.Context) {
	for {
		j := s.jobQueue.Pop()
		if j == nil {
			return
		}

		now := time.Now()
		j.Status = string(job.StatusRunning)
		j.StartedAt = &now
		if s.jobRepo != nil {
			_ = s.jobRepo.UpdateJob(j)
		}

		err := s.registry.Execute(ctx, j)
		finished := time.Now()
		j.FinishedAt = &finished
		if err == executor.ErrExecutorNotFound {
			log.Printf("Job executor not found for action: %s", j.Action)
			j.Status = string(job.StatusFailed)
			j.Error = err.Error()
		} else if err != nil {
			log.Printf("Job %d error: %v", j.ID, err)
			j.Status = string(job.StatusFailed)
			j.Error = err.Error()
		} else {
			j.Status = string(job.StatusCompleted)
		}
		if s.jobRepo != nil {
			_ = s.jobRepo.UpdateJob(j)
		}
		delete(s.enqueued, j.ID)
	}
}

// IsRunning returns if active
func (s *Scheduler) IsRunning() bool {
	return s.running
}

// GetQueueSize returns pending count
func (s *Scheduler) GetQueueSize() int {
	return s.jobQueue.Len()
}

// syncQueued fetches queued jobs from the repository and enqueues them.
func (s *Scheduler) syncQueued() {
	if s.jobRepo == nil {
		return
	}
	jbs, err := s.jobRepo.GetQueuedJobs()
	if err != nil {
		log.Printf("syncQueued error: %v", err)
		return
	}
	for i := range jbs {
		if s.enqueued[jbs[i].ID] {
			continue
		}
		s.EnqueueJob(&jbs[i])
	}
}
