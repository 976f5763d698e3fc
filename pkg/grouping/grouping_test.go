package grouping

import (
	"reflect"
	"testing"
)

type item struct {
	title    string
	assignee string // "" means unassigned
	priority int
}

func assigneeAccessor() Accessor[item] {
	return Accessor[item]{
		SortKey: func(it item) (string, bool) {
			return it.assignee, it.assignee != ""
		},
		Label: func(it item) string {
			if it.assignee == "" {
				return "Unassigned"
			}
			return it.assignee
		},
	}
}

func priorityOf(it item) int { return it.priority }

func TestGroupByPartitionsContiguousRuns(t *testing.T) {
	items := []item{
		{title: "c", assignee: "bob", priority: 1},
		{title: "a", assignee: "alice", priority: 2},
		{title: "b", assignee: "alice", priority: 1},
		{title: "d", assignee: "bob", priority: 2},
	}

	buckets := GroupBy(items, assigneeAccessor(), priorityOf)

	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "alice" || buckets[1].Label != "bob" {
		t.Fatalf("unexpected bucket labels: %q, %q", buckets[0].Label, buckets[1].Label)
	}
	if buckets[0].Items[0].title != "b" || buckets[0].Items[1].title != "a" {
		t.Fatalf("expected alice's items ordered by priority, got %+v", buckets[0].Items)
	}
}

func TestGroupByPlacesAbsentLast(t *testing.T) {
	items := []item{
		{title: "x", assignee: "", priority: 0},
		{title: "y", assignee: "zoe", priority: 0},
		{title: "z", assignee: "", priority: 1},
	}

	buckets := GroupBy(items, assigneeAccessor(), priorityOf)

	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	last := buckets[len(buckets)-1]
	if last.Label != "Unassigned" {
		t.Fatalf("expected Unassigned bucket last, got %q", last.Label)
	}
	if len(last.Items) != 2 {
		t.Fatalf("expected 2 unassigned items, got %d", len(last.Items))
	}
}

func TestGroupByDoesNotModifyInput(t *testing.T) {
	items := []item{
		{title: "1", assignee: "b"},
		{title: "2", assignee: "a"},
	}
	before := make([]item, len(items))
	copy(before, items)

	GroupBy(items, assigneeAccessor(), priorityOf)

	if !reflect.DeepEqual(items, before) {
		t.Fatalf("input slice was reordered: %+v", items)
	}
}

func TestSinglePreservesOrder(t *testing.T) {
	items := []item{
		{title: "first"},
		{title: "second"},
		{title: "third"},
	}

	buckets := Single(items)

	if len(buckets) != 1 {
		t.Fatalf("expected a single bucket, got %d", len(buckets))
	}
	if buckets[0].Label != "" {
		t.Fatalf("expected unlabeled bucket, got %q", buckets[0].Label)
	}
	for i, it := range buckets[0].Items {
		if it.title != items[i].title {
			t.Fatalf("expected original order preserved, got %+v", buckets[0].Items)
		}
	}
}
