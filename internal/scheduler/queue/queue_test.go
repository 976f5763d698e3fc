package queue

import (
	"testing"

	"github.com/agily-hq/agily/internal/domain/job"
)

func TestQueue_FIFO(t *testing.T) {
	q := NewJobQueue()

	q.Push(&job.BulkJob{ID: 1})
	q.Push(&job.BulkJob{ID: 2})
	q.Push(&job.BulkJob{ID: 3})

	if q.Len() != 3 {
		t.Fatalf("expected 3 jobs, got %d", q.Len())
	}

	for want := uint(1); want <= 3; want++ {
		j := q.Pop()
		if j == nil || j.ID != want {
			t.Fatalf("expected job %d, got %v", want, j)
		}
	}

	if q.Pop() != nil {
		t.Fatal("expected nil from empty queue")
	}
}

func TestQueue_PushNil(t *testing.T) {
	q := NewJobQueue()
	q.Push(nil)
	if q.Len() != 0 {
		t.Fatal("nil push must not enqueue")
	}
}
