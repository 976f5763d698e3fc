package application

import (
	"time"

	"github.com/agily-hq/agily/internal/domain/issue"
	"github.com/agily-hq/agily/internal/domain/project"
	"github.com/agily-hq/agily/internal/repository"
)

const (
	recentWindow  = 7 * 24 * time.Hour
	dashboardTopN = 5
)

// ProjectSummary is a project with its issue counters for admin views.
type ProjectSummary struct {
	Project  project.Project `json:"project"`
	Open     int64           `json:"open"`
	Resolved int64           `json:"resolved"`
	Closed   int64           `json:"closed"`
}

type SuperuserDashboard struct {
	UserCount      int64         `json:"user_count"`
	WorkspaceCount int           `json:"workspace_count"`
	ProjectCount   int           `json:"project_count"`
	RecentIssues   []issue.Issue `json:"recent_issues"`
}

type AdminDashboard struct {
	Projects     []ProjectSummary `json:"projects"`
	RecentIssues []issue.Issue    `json:"recent_issues"`
}

type DeveloperDashboard struct {
	AssignedOpen int64         `json:"assigned_open"`
	TopIssues    []issue.Issue `json:"top_issues"`
}

type TesterDashboard struct {
	ReportedRecently int64         `json:"reported_recently"`
	RecentIssues     []issue.Issue `json:"recent_issues"`
}

type DashboardService struct {
	Repos *repository.Repos
}

func NewDashboardService(repos *repository.Repos) *DashboardService {
	return &DashboardService{
		Repos: repos,
	}
}

// ForSuperuser summarizes the whole installation.
func (s *DashboardService) ForSuperuser(now time.Time) (*SuperuserDashboard, error) {
	_, total, err := s.Repos.User.ListUsersPaging(0, 1)
	if err != nil {
		return nil, err
	}
	workspaces, err := s.Repos.Workspace.ListWorkspaces()
	if err != nil {
		return nil, err
	}
	projects, err := s.Repos.Project.ListProjects()
	if err != nil {
		return nil, err
	}

	pids := make([]uint, 0, len(projects))
	for _, p := range projects {
		pids = append(pids, p.PID)
	}
	recent, err := s.Repos.Issue.ListRecentByProjects(pids, now.Add(-recentWindow), dashboardTopN)
	if err != nil {
		return nil, err
	}

	return &SuperuserDashboard{
		UserCount:      total,
		WorkspaceCount: len(workspaces),
		ProjectCount:   len(projects),
		RecentIssues:   recent,
	}, nil
}

// ForProjectAdmin summarizes the projects the user administers.
func (s *DashboardService) ForProjectAdmin(uid uint, now time.Time) (*AdminDashboard, error) {
	projects, err := s.Repos.Project.ListProjectsByAdmin(uid)
	if err != nil {
		return nil, err
	}

	summaries := make([]ProjectSummary, 0, len(projects))
	pids := make([]uint, 0, len(projects))
	for _, p := range projects {
		open, err := s.Repos.Issue.CountByStatus(p.PID, string(issue.StatusOpen))
		if err != nil {
			return nil, err
		}
		resolved, err := s.Repos.Issue.CountByStatus(p.PID, string(issue.StatusResolved))
		if err != nil {
			return nil, err
		}
		closed, err := s.Repos.Issue.CountByStatus(p.PID, string(issue.StatusClosed))
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, ProjectSummary{
			Project:  p,
			Open:     open,
			Resolved: resolved,
			Closed:   closed,
		})
		pids = append(pids, p.PID)
	}

	recent, err := s.Repos.Issue.ListRecentByProjects(pids, now.Add(-recentWindow), dashboardTopN)
	if err != nil {
		return nil, err
	}

	return &AdminDashboard{
		Projects:     summaries,
		RecentIssues: recent,
	}, nil
}

// ForDeveloper shows what landed on the user's plate, most urgent first.
func (s *DashboardService) ForDeveloper(uid uint) (*DeveloperDashboard, error) {
	count, err := s.Repos.Issue.CountAssignedOpen(uid)
	if err != nil {
		return nil, err
	}
	top, err := s.Repos.Issue.ListAssignedOpen(uid, dashboardTopN)
	if err != nil {
		return nil, err
	}
	return &DeveloperDashboard{
		AssignedOpen: count,
		TopIssues:    top,
	}, nil
}

// ForTester shows what the user reported within the recent window.
func (s *DashboardService) ForTester(uid uint, now time.Time) (*TesterDashboard, error) {
	since := now.Add(-recentWindow)
	count, err := s.Repos.Issue.CountRequestedSince(uid, since)
	if err != nil {
		return nil, err
	}
	recent, err := s.Repos.Issue.ListRequestedSince(uid, since, dashboardTopN)
	if err != nil {
		return nil, err
	}
	return &TesterDashboard{
		ReportedRecently: count,
		RecentIssues:     recent,
	}, nil
}
