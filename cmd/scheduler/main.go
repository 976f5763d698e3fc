package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/internal/config"
	"github.com/agily-hq/agily/internal/config/db"
	"github.com/agily-hq/agily/internal/domain/audit"
	"github.com/agily-hq/agily/internal/domain/epic"
	"github.com/agily-hq/agily/internal/domain/issue"
	"github.com/agily-hq/agily/internal/domain/job"
	"github.com/agily-hq/agily/internal/domain/project"
	"github.com/agily-hq/agily/internal/domain/sprint"
	"github.com/agily-hq/agily/internal/domain/story"
	"github.com/agily-hq/agily/internal/domain/user"
	"github.com/agily-hq/agily/internal/domain/workspace"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/internal/scheduler"
	"github.com/agily-hq/agily/internal/scheduler/executor"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&workspace.Workspace{},
		&workspace.Member{},
		&project.Project{},
		&issue.Issue{},
		&issue.Attachment{},
		&epic.EpicState{},
		&epic.Epic{},
		&story.StoryState{},
		&story.Story{},
		&story.Attachment{},
		&sprint.Sprint{},
		&job.BulkJob{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	repos := repository.New(db.DB)
	rollup := application.NewRollupService(repos)
	stories := application.NewStoryService(repos, rollup)
	bulkExecutor := executor.NewBulkExecutor(repos, rollup, stories)

	registry := executor.NewExecutorRegistry()
	for _, action := range []job.Action{
		job.ActionRemove,
		job.ActionDuplicate,
		job.ActionSetState,
		job.ActionSetAssignee,
		job.ActionSetOwner,
		job.ActionSetSprint,
		job.ActionSetEpic,
		job.ActionResetEpic,
	} {
		registry.Register(action, bulkExecutor)
	}

	sched := scheduler.NewScheduler(registry, repos.Job, config.QueuePollInterval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		<-sigChan
		log.Println("Shutdown signal")
		cancel()
	}()

	log.Printf("Starting scheduler (queue: %d)", sched.GetQueueSize())
	if err := sched.Start(ctx); err != nil {
		log.Printf("Scheduler error: %v", err)
	}
}
