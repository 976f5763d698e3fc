package main

import (
	"log"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	_ "github.com/agily-hq/agily/docs"
	"github.com/agily-hq/agily/internal/api/middleware"
	"github.com/agily-hq/agily/internal/api/routes"
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
	"github.com/agily-hq/agily/internal/seed"
	"github.com/agily-hq/agily/internal/storage"
)

// @title Agily API
// @version 1.0
// @description Multi-tenant project tracker: workspaces, projects, issues, epics, stories and sprints.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	if config.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: config.SentryDSN}); err != nil {
			log.Printf("Warning: sentry init failed: %v", err)
		}
	}

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Initialize object storage for attachments
	storage.InitMinio()

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

	// Seed workflow states
	if err := seed.States(config.StatesFile, repository.New(db.DB)); err != nil {
		log.Fatalf("Failed to seed workflow states: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
