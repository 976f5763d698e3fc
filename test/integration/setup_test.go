//go:build integration
// +build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

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
	"github.com/agily-hq/agily/internal/testutils"
)

// TestContext holds all test dependencies
type TestContext struct {
	Router         *gin.Engine
	SuperToken     string
	AdminToken     string
	DeveloperToken string
	TesterToken    string
	OutsiderToken  string
	Superuser      *user.User
	TestAdmin      *user.User
	TestDeveloper  *user.User
	TestTester     *user.User
	TestOutsider   *user.User
	TestWorkspace  *workspace.Workspace
	TestProject    *project.Project
}

var testCtx *TestContext

func allModels() []interface{} {
	return []interface{}{
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
	}
}

func TestMain(m *testing.M) {
	cleanupDB := testutils.SetupPostgresForIntegration()

	if err := setupTestEnvironment(); err != nil {
		cleanupDB()
		log.Fatalf("Failed to setup test environment: %v", err)
	}

	code := m.Run()

	cleanupTestEnvironment()
	cleanupDB()
	os.Exit(code)
}

func setupTestEnvironment() error {
	_ = os.Setenv("JWT_SECRET", "test-secret-key-for-integration-testing")
	_ = os.Setenv("ISSUER", "test-agily")
	_ = os.Setenv("SERVER_PORT", "8081")
	_ = os.Setenv("STATES_FILE", "../../configs/states.yaml")

	config.LoadConfig()
	middleware.Init()

	db.Init()

	// Drop and recreate tables for clean test state
	if err := db.DB.Migrator().DropTable(allModels()...); err != nil {
		return fmt.Errorf("failed to drop tables: %v", err)
	}
	if err := db.DB.AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("failed to migrate database: %v", err)
	}
	log.Println("AutoMigrate completed")

	if err := seed.States(config.StatesFile, repository.New(db.DB)); err != nil {
		return fmt.Errorf("failed to seed states: %v", err)
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(router, db.DB)

	testCtx = &TestContext{Router: router}

	if err := createTestData(); err != nil {
		return fmt.Errorf("failed to create test data: %v", err)
	}
	log.Println("Test data created")

	return nil
}

func createUser(username, email string, super bool) (*user.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	u := &user.User{
		Username:    username,
		Email:       email,
		Password:    string(hashed),
		IsSuperuser: super,
		IsActive:    true,
	}
	if err := db.DB.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func createTestData() error {
	super, err := createUser("test-super", "super@test.com", true)
	if err != nil {
		return fmt.Errorf("failed to create superuser: %v", err)
	}
	admin, err := createUser("test-admin", "admin@test.com", false)
	if err != nil {
		return fmt.Errorf("failed to create admin: %v", err)
	}
	developer, err := createUser("test-developer", "developer@test.com", false)
	if err != nil {
		return fmt.Errorf("failed to create developer: %v", err)
	}
	tester, err := createUser("test-tester", "tester@test.com", false)
	if err != nil {
		return fmt.Errorf("failed to create tester: %v", err)
	}
	outsider, err := createUser("test-outsider", "outsider@test.com", false)
	if err != nil {
		return fmt.Errorf("failed to create outsider: %v", err)
	}
	testCtx.Superuser = super
	testCtx.TestAdmin = admin
	testCtx.TestDeveloper = developer
	testCtx.TestTester = tester
	testCtx.TestOutsider = outsider

	ws := &workspace.Workspace{
		Slug:    "acme",
		Name:    "Acme Inc",
		OwnerID: &admin.UID,
	}
	if err := db.DB.Create(ws).Error; err != nil {
		return fmt.Errorf("failed to create workspace: %v", err)
	}
	testCtx.TestWorkspace = ws

	memberships := []workspace.Member{
		{WID: ws.WID, UID: admin.UID, Role: workspace.RoleProjectAdmin},
		{WID: ws.WID, UID: developer.UID, Role: workspace.RoleDeveloper},
		{WID: ws.WID, UID: tester.UID, Role: workspace.RoleTester},
	}
	for i := range memberships {
		if err := db.DB.Create(&memberships[i]).Error; err != nil {
			return fmt.Errorf("failed to create membership: %v", err)
		}
	}

	proj := &project.Project{
		Name:           "test-project",
		WID:            ws.WID,
		ProjectAdminID: &admin.UID,
	}
	if err := db.DB.Create(proj).Error; err != nil {
		return fmt.Errorf("failed to create project: %v", err)
	}
	testCtx.TestProject = proj

	testCtx.SuperToken = generateToken(super)
	testCtx.AdminToken = generateToken(admin)
	testCtx.DeveloperToken = generateToken(developer)
	testCtx.TesterToken = generateToken(tester)
	testCtx.OutsiderToken = generateToken(outsider)

	return nil
}

func generateToken(u *user.User) string {
	token, err := middleware.GenerateToken(u.UID, u.Username, u.IsSuperuser, 24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	return token
}

func cleanupTestEnvironment() {
	if db.DB != nil {
		_ = db.DB.Migrator().DropTable(allModels()...)
	}
}

// GetTestContext returns the global test context
func GetTestContext() *TestContext {
	return testCtx
}
