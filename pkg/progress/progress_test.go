package progress

import "testing"

func TestComputeWithPoints(t *testing.T) {
	children := []Child{
		{Points: 3, Done: true},
		{Points: 5, Done: false},
		{Points: 2, Done: true},
	}

	r := Compute(children)

	if r.TotalPoints != 10 {
		t.Fatalf("expected total 10, got %d", r.TotalPoints)
	}
	if r.PointsDone != 5 {
		t.Fatalf("expected done 5, got %d", r.PointsDone)
	}
	if r.StoryCount != 3 {
		t.Fatalf("expected count 3, got %d", r.StoryCount)
	}
	if r.Progress != 50 {
		t.Fatalf("expected progress 50, got %d", r.Progress)
	}
}

func TestComputeTruncatesProgress(t *testing.T) {
	children := []Child{
		{Points: 1, Done: true},
		{Points: 2, Done: false},
	}

	// 1/3 -> 33.33, must truncate to 33, never round.
	if r := Compute(children); r.Progress != 33 {
		t.Fatalf("expected progress 33, got %d", r.Progress)
	}
}

func TestComputeFallsBackToCounts(t *testing.T) {
	children := []Child{
		{Done: true},
		{Done: false},
		{Done: false},
		{Done: true},
	}

	r := Compute(children)

	if r.TotalPoints != 4 {
		t.Fatalf("expected total to fall back to count 4, got %d", r.TotalPoints)
	}
	if r.PointsDone != 2 {
		t.Fatalf("expected done to fall back to done count 2, got %d", r.PointsDone)
	}
	if r.Progress != 50 {
		t.Fatalf("expected progress 50, got %d", r.Progress)
	}
}

func TestComputeEmpty(t *testing.T) {
	r := Compute(nil)

	if r.TotalPoints != 0 || r.PointsDone != 0 || r.StoryCount != 0 {
		t.Fatalf("expected zero rollup, got %+v", r)
	}
	if r.Progress != 0 {
		t.Fatalf("expected progress 0 with no children, got %d", r.Progress)
	}
}

func TestComputeIdempotent(t *testing.T) {
	children := []Child{
		{Points: 8, Done: true},
		{Points: 13, Done: false},
	}

	first := Compute(children)
	second := Compute(children)

	if first != second {
		t.Fatalf("expected identical rollups, got %+v then %+v", first, second)
	}
}

func TestComputeAllDone(t *testing.T) {
	children := []Child{
		{Points: 2, Done: true},
		{Points: 3, Done: true},
	}

	if r := Compute(children); r.Progress != 100 {
		t.Fatalf("expected progress 100, got %d", r.Progress)
	}
}
