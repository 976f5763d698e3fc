package application

import (
	"fmt"
	"log"
	"strings"

	"github.com/agily-hq/agily/internal/config"
	"github.com/agily-hq/agily/internal/domain/issue"
	"github.com/agily-hq/agily/internal/domain/user"
	"github.com/agily-hq/agily/internal/notify"
	"github.com/agily-hq/agily/internal/repository"
)

// Notifier emails the people who care about an issue: the workspace's
// testers, active superusers, the project admin and the assignee, deduped
// by email address. Creation mails are sent on the request path and their
// delivery failures surface to the caller; update mails are best-effort.
type Notifier struct {
	Repos  *repository.Repos
	Sender notify.Sender
}

func NewNotifier(repos *repository.Repos, sender notify.Sender) *Notifier {
	return &Notifier{
		Repos:  repos,
		Sender: sender,
	}
}

// Recipients resolves the notification list for an issue.
func (n *Notifier) Recipients(i *issue.Issue) ([]string, error) {
	p, err := n.Repos.Project.GetProjectByID(i.PID)
	if err != nil {
		return nil, err
	}

	var candidates []user.User

	testers, err := n.Repos.User.ListActiveMembersByRole(p.WID, "tester")
	if err != nil {
		return nil, err
	}
	candidates = append(candidates, testers...)

	supers, err := n.Repos.User.ListActiveSuperusers()
	if err != nil {
		return nil, err
	}
	candidates = append(candidates, supers...)

	if p.ProjectAdminID != nil {
		if admin, err := n.Repos.User.GetUserByID(*p.ProjectAdminID); err == nil {
			candidates = append(candidates, admin)
		}
	}
	if i.AssigneeID != nil {
		if assignee, err := n.Repos.User.GetUserByID(*i.AssigneeID); err == nil {
			candidates = append(candidates, assignee)
		}
	}

	seen := make(map[string]bool)
	var emails []string
	for _, u := range candidates {
		if u.Email == "" || seen[u.Email] {
			continue
		}
		seen[u.Email] = true
		emails = append(emails, u.Email)
	}
	return emails, nil
}

// NotifyCreated emails the recipients about a fresh issue. The error is
// returned so the creating request can report a dropped mail.
func (n *Notifier) NotifyCreated(i *issue.Issue) error {
	subject := fmt.Sprintf("[Issue %d] %s", i.ID, i.Title)
	return n.deliver(i, subject, "A new issue was reported.")
}

// NotifyUpdated emails the recipients when a meaningful field changed.
// Failures are logged; the update has already been written.
func (n *Notifier) NotifyUpdated(i *issue.Issue) {
	subject := fmt.Sprintf("[Issue %d] %s (updated)", i.ID, i.Title)
	if err := n.deliver(i, subject, "The issue was updated."); err != nil {
		log.Printf("notify: issue %d: %v", i.ID, err)
	}
}

func (n *Notifier) deliver(i *issue.Issue, subject, lead string) error {
	recipients, err := n.Recipients(i)
	if err != nil {
		return fmt.Errorf("resolving recipients: %w", err)
	}
	if len(recipients) == 0 {
		return nil
	}

	link := fmt.Sprintf("%s/issues/%d", config.BaseURL, i.ID)
	text := n.textBody(i, lead, link)
	html := n.htmlBody(i, lead, link)

	if err := n.Sender.Send(recipients, subject, text, html); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}

func (n *Notifier) textBody(i *issue.Issue, lead, link string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", lead)
	fmt.Fprintf(&b, "Title: %s\n", i.Title)
	fmt.Fprintf(&b, "Status: %s\n", i.Status)
	fmt.Fprintf(&b, "Severity: %s\n", i.Severity)
	if i.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", i.Description)
	}
	fmt.Fprintf(&b, "\n%s\n", link)
	return b.String()
}

func (n *Notifier) htmlBody(i *issue.Issue, lead, link string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>%s</p>", lead)
	fmt.Fprintf(&b, "<p><strong>%s</strong></p>", i.Title)
	fmt.Fprintf(&b, "<p>Status: %s<br>Severity: %s</p>", i.Status, i.Severity)
	if i.Description != "" {
		fmt.Fprintf(&b, "<p>%s</p>", i.Description)
	}
	fmt.Fprintf(&b, `<p><a href="%s">View issue</a></p>`, link)
	return b.String()
}

// NotifyWorthy reports whether an edit touched a field recipients care
// about. Pure field shuffles (e.g. requester backfill) stay quiet.
func NotifyWorthy(old, updated *issue.Issue) bool {
	if old.Title != updated.Title {
		return true
	}
	if old.Description != updated.Description {
		return true
	}
	if old.Status != updated.Status {
		return true
	}
	if old.Severity != updated.Severity {
		return true
	}
	if !uintPtrEqual(old.AssigneeID, updated.AssigneeID) {
		return true
	}
	if !strPtrEqual(old.Solution, updated.Solution) {
		return true
	}
	return false
}

func uintPtrEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
