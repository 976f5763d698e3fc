package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/api/handlers"
	"github.com/agily-hq/agily/internal/api/middleware"
	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/internal/cron"
	"github.com/agily-hq/agily/internal/domain/workspace"
	"github.com/agily-hq/agily/internal/notify"
	"github.com/agily-hq/agily/internal/repository"
)

func RegisterRoutes(r *gin.Engine, database *gorm.DB) {
	// init
	repos_instance := repository.New(database)
	services_instance := application.New(repos_instance, notify.NewSMTPSender())
	handlers_instance := handlers.New(services_instance, repos_instance, r)
	authMiddleware := middleware.NewAuth(repos_instance)

	// Start background tasks
	cron.StartSprintStateTask(services_instance.Sprint)
	cron.StartCleanupTask(services_instance.Audit)

	// setup
	r.POST("/register", handlers_instance.User.Register)
	r.POST("/login", handlers_instance.User.Login)
	r.POST("/logout", handlers_instance.User.Logout)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/jobs", handlers.StreamJobs(services_instance.Bulk))
		auth.GET("/jobs/:id", handlers_instance.Bulk.GetJob)

		auth.GET("/epic-states", handlers_instance.Epic.ListEpicStates)
		auth.GET("/story-states", handlers_instance.Story.ListStoryStates)

		users := auth.Group("/users")
		{
			users.GET("", handlers_instance.User.GetUsers)
			users.GET("/paging", handlers_instance.User.ListUsersPaging)
			users.GET("/:id", handlers_instance.User.GetUserByID)
			users.PATCH("/:id", authMiddleware.UserOrSuperuser(), handlers_instance.User.UpdateUser)
			users.DELETE("/:id", authMiddleware.UserOrSuperuser(), handlers_instance.User.DeleteUser)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", authMiddleware.Superuser(), handlers_instance.Audit.GetAuditLogs)
		}

		workspaces := auth.Group("/workspaces")
		{
			workspaces.GET("", handlers_instance.Workspace.ListWorkspaces)
			workspaces.POST("", handlers_instance.Workspace.CreateWorkspace)
		}

		w := auth.Group("/w/:workspace")
		w.Use(middleware.ResolveWorkspace(repos_instance))
		{
			member := authMiddleware.Member(middleware.FromWorkspaceContext())
			admin := authMiddleware.Role(middleware.FromWorkspaceContext(), workspace.RoleProjectAdmin)
			reporter := authMiddleware.Role(middleware.FromWorkspaceContext(), workspace.RoleProjectAdmin, workspace.RoleTester)

			w.GET("", member, handlers_instance.Workspace.GetWorkspace)
			w.PATCH("", admin, handlers_instance.Workspace.UpdateWorkspace)
			w.DELETE("", admin, handlers_instance.Workspace.DeleteWorkspace)

			w.GET("/dashboard", member, handlers_instance.Dashboard.GetDashboard)

			members := w.Group("/members")
			{
				members.GET("", member, handlers_instance.Workspace.ListMembers)
				members.POST("", admin, handlers_instance.Workspace.AddMember)
				members.PATCH("", admin, handlers_instance.Workspace.UpdateMember)
				members.DELETE("/:id", admin, handlers_instance.Workspace.RemoveMember)
			}

			projects := w.Group("/projects")
			{
				projects.GET("", member, handlers_instance.Project.ListProjects)
				projects.POST("", admin, handlers_instance.Project.CreateProject)
				projects.GET("/:project_id", member, handlers_instance.Project.GetProject)
				projects.PATCH("/:project_id", authMiddleware.Role(middleware.FromProjectIDInParam(), workspace.RoleProjectAdmin), handlers_instance.Project.UpdateProject)
				projects.DELETE("/:project_id", authMiddleware.Role(middleware.FromProjectIDInParam(), workspace.RoleProjectAdmin), handlers_instance.Project.DeleteProject)

				projects.GET("/:project_id/issues/export", member, handlers_instance.Excel.ExportIssues)
				projects.POST("/:project_id/issues/import", authMiddleware.Role(middleware.FromProjectIDInParam(), workspace.RoleProjectAdmin), handlers_instance.Excel.ImportIssues)
			}

			issues := w.Group("/issues")
			{
				issues.GET("", member, handlers_instance.Issue.ListIssues)
				issues.GET("/export", member, handlers_instance.Excel.ExportWorkspaceIssues)
				issues.POST("", reporter, handlers_instance.Issue.CreateIssue)
				issues.GET("/:id", member, handlers_instance.Issue.GetIssue)
				issues.PATCH("/:id", member, handlers_instance.Issue.UpdateIssue)
				issues.DELETE("/:id", reporter, handlers_instance.Issue.DeleteIssue)

				issues.GET("/:id/attachments", member, handlers_instance.Attachment.ListIssueAttachments)
				issues.POST("/:id/attachments", member, handlers_instance.Attachment.UploadIssueAttachment)
			}

			attachments := w.Group("/attachments")
			{
				attachments.GET("/:attachment_id", member, handlers_instance.Attachment.DownloadIssueAttachment)
				attachments.POST("/:attachment_id/delete-token", member, handlers_instance.Attachment.IssueDeleteToken)
				attachments.DELETE("/delete/:token", member, handlers_instance.Attachment.DeleteIssueAttachment)
			}

			epics := w.Group("/epics")
			{
				epics.GET("", member, handlers_instance.Epic.ListEpics)
				epics.POST("", admin, handlers_instance.Epic.CreateEpic)
				epics.GET("/:id", member, handlers_instance.Epic.GetEpic)
				epics.PATCH("/:id", admin, handlers_instance.Epic.UpdateEpic)
				epics.DELETE("/:id", admin, handlers_instance.Epic.DeleteEpic)
			}

			stories := w.Group("/stories")
			{
				stories.GET("", member, handlers_instance.Story.ListStories)
				stories.POST("", member, handlers_instance.Story.CreateStory)
				stories.GET("/:id", member, handlers_instance.Story.GetStory)
				stories.PATCH("/:id", member, handlers_instance.Story.UpdateStory)
				stories.POST("/:id/duplicate", member, handlers_instance.Story.DuplicateStory)
				stories.DELETE("/:id", admin, handlers_instance.Story.DeleteStory)

				stories.GET("/:id/attachments", member, handlers_instance.Attachment.ListStoryAttachments)
				stories.POST("/:id/attachments", member, handlers_instance.Attachment.UploadStoryAttachment)
			}

			storyAttachments := w.Group("/story-attachments")
			{
				storyAttachments.GET("/:attachment_id", member, handlers_instance.Attachment.DownloadStoryAttachment)
				storyAttachments.POST("/:attachment_id/delete-token", member, handlers_instance.Attachment.IssueStoryDeleteToken)
				storyAttachments.DELETE("/delete/:token", member, handlers_instance.Attachment.DeleteStoryAttachment)
			}

			// Writes resolve the workspace through the sprint itself, so an
			// id from another workspace is rejected up front.
			sprintAdmin := authMiddleware.Role(middleware.FromIDParam(func(id uint) (uint, error) {
				sp, err := repos_instance.Sprint.GetSprintByID(id)
				if err != nil {
					return 0, err
				}
				return repos_instance.Project.GetWorkspaceIDByProjectID(sp.PID)
			}), workspace.RoleProjectAdmin)

			sprints := w.Group("/sprints")
			{
				sprints.GET("", member, handlers_instance.Sprint.ListSprints)
				sprints.POST("", admin, handlers_instance.Sprint.CreateSprint)
				sprints.GET("/:id", member, handlers_instance.Sprint.GetSprint)
				sprints.PATCH("/:id", sprintAdmin, handlers_instance.Sprint.UpdateSprint)
				sprints.DELETE("/:id", sprintAdmin, handlers_instance.Sprint.DeleteSprint)
			}

			w.POST("/bulk", admin, handlers_instance.Bulk.SubmitBulkAction)
		}
	}
}
