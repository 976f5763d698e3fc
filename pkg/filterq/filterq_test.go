package filterq

import "testing"

var storyFields = map[string]bool{
	"requester": true,
	"assignee":  true,
	"state":     true,
	"label":     true,
	"sprint":    true,
}

func TestParse_FieldTokensAndText(t *testing.T) {
	q := Parse("assignee:alice state:done crash on login", storyFields)

	if q.Fields["assignee"] != "alice" {
		t.Fatalf("expected assignee token, got %q", q.Fields["assignee"])
	}
	if q.Fields["state"] != "done" {
		t.Fatalf("expected state token, got %q", q.Fields["state"])
	}
	if q.Text != "crash on login" {
		t.Fatalf("unexpected free text: %q", q.Text)
	}
}

func TestParse_UnknownFieldStaysText(t *testing.T) {
	q := Parse("severity:high timeout", storyFields)

	if len(q.Fields) != 0 {
		t.Fatalf("unknown field must not be captured: %v", q.Fields)
	}
	if q.Text != "severity:high timeout" {
		t.Fatalf("unexpected free text: %q", q.Text)
	}
}

func TestParse_LastOccurrenceWins(t *testing.T) {
	q := Parse("state:todo state:done", storyFields)

	if q.Fields["state"] != "done" {
		t.Fatalf("expected last token to win, got %q", q.Fields["state"])
	}
}

func TestParse_EmptyValueStaysText(t *testing.T) {
	q := Parse("assignee: fixme", storyFields)

	if len(q.Fields) != 0 {
		t.Fatalf("empty value must not be captured: %v", q.Fields)
	}
	if q.Text != "assignee: fixme" {
		t.Fatalf("unexpected free text: %q", q.Text)
	}
}

func TestParse_Empty(t *testing.T) {
	q := Parse("", storyFields)

	if len(q.Fields) != 0 || q.Text != "" {
		t.Fatalf("expected empty query, got %+v", q)
	}
}
