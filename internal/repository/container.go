package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User      UserRepo
	Workspace WorkspaceRepo
	Project   ProjectRepo
	Issue     IssueRepo
	Epic      EpicRepo
	Story     StoryRepo
	Sprint    SprintRepo
	Job       JobRepo
	Audit     AuditRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		User:      NewUserRepo(db),
		Workspace: NewWorkspaceRepo(db),
		Project:   NewProjectRepo(db),
		Issue:     NewIssueRepo(db),
		Epic:      NewEpicRepo(db),
		Story:     NewStoryRepo(db),
		Sprint:    NewSprintRepo(db),
		Job:       NewJobRepo(db),
		Audit:     NewAuditRepo(db),
		db:        db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:      r.User.WithTx(tx),
		Workspace: r.Workspace.WithTx(tx),
		Project:   r.Project.WithTx(tx),
		Issue:     r.Issue.WithTx(tx),
		Epic:      r.Epic.WithTx(tx),
		Story:     r.Story.WithTx(tx),
		Sprint:    r.Sprint.WithTx(tx),
		Job:       r.Job.WithTx(tx),
		Audit:     r.Audit.WithTx(tx),
		db:        tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
