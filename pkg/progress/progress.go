// Package progress computes the derived rollup fields kept on epics and
// sprints: point totals, completion counts and an integer progress
// percentage. The computation is pure and idempotent so callers can rerun
// it after any child change.
package progress

// Child is the slice of a story that rollups care about.
type Child struct {
	Points int
	Done   bool
}

// Rollup is the set of derived fields stored on a parent record.
type Rollup struct {
	TotalPoints int
	PointsDone  int
	StoryCount  int
	Progress    int
}

// Compute derives the rollup for a parent from its children.
//
// When no child carries a point value, plain child counts stand in for the
// point sums; the divisor is never zero.
func Compute(children []Child) Rollup {
	var totalPoints, pointsDone, doneCount int

	for _, ch := range children {
		totalPoints += ch.Points
		if ch.Done {
			pointsDone += ch.Points
			doneCount++
		}
	}

	if totalPoints == 0 {
		totalPoints = len(children)
	}
	if pointsDone == 0 {
		pointsDone = doneCount
	}

	divisor := totalPoints
	if divisor == 0 {
		divisor = 1
	}

	return Rollup{
		TotalPoints: totalPoints,
		PointsDone:  pointsDone,
		StoryCount:  len(children),
		Progress:    int(float64(pointsDone) / float64(divisor) * 100),
	}
}
