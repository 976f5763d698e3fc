package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	Issuer     string
	BaseURL    string

	IsProduction bool

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	MailHost     string
	MailPort     int
	MailUser     string
	MailPassword string
	MailFrom     string

	SentryDSN string

	QueuePollInterval   time.Duration
	SprintCronInterval  time.Duration
	AuditRetentionDays  int
	DefaultPageSize     int
	StatesFile          string
	WorkspaceAdminRoles = []string{"project_admin"}
	StoryEditRoles      = []string{"project_admin", "developer", "tester"}
	IssueCreateRoles    = []string{"project_admin", "tester"}
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "agily")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "agily")
	BaseURL = getEnv("BASE_URL", "http://localhost:8080")
	IsProduction = getEnv("ENVIRONMENT", "development") == "production"

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "agily-attachments")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	MailHost = getEnv("MAIL_HOST", "")
	MailPort, _ = strconv.Atoi(getEnv("MAIL_PORT", "587"))
	MailUser = getEnv("MAIL_USER", "")
	MailPassword = getEnv("MAIL_PASSWORD", "")
	MailFrom = getEnv("MAIL_FROM", "agily@localhost")

	SentryDSN = getEnv("SENTRY_DSN", "")

	QueuePollInterval = getDuration("QUEUE_POLL_INTERVAL", 5*time.Second)
	SprintCronInterval = getDuration("SPRINT_CRON_INTERVAL", time.Hour)
	AuditRetentionDays, _ = strconv.Atoi(getEnv("AUDIT_RETENTION_DAYS", "30"))
	DefaultPageSize, _ = strconv.Atoi(getEnv("DEFAULT_PAGE_SIZE", "12"))
	StatesFile = getEnv("STATES_FILE", "configs/states.yaml")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Invalid duration for %s: %q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
