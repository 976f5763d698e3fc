package cron

import (
	"log"
	"time"

	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/internal/config"
)

// StartSprintStateTask keeps sprint states aligned with the clock: planned
// sprints whose start has passed move to started, started sprints whose end
// has passed move to finished.
func StartSprintStateTask(sprintService *application.SprintService) {
	go func() {
		log.Printf("Starting sprint state task (interval: %s)", config.SprintCronInterval)

		// Run immediately on startup
		if moved, err := sprintService.RefreshStates(time.Now()); err != nil {
			log.Printf("Failed to refresh sprint states: %v", err)
		} else if moved > 0 {
			log.Printf("Advanced %d sprint(s)", moved)
		}

		ticker := time.NewTicker(config.SprintCronInterval)
		defer ticker.Stop()

		for range ticker.C {
			if moved, err := sprintService.RefreshStates(time.Now()); err != nil {
				log.Printf("Failed to refresh sprint states: %v", err)
			} else if moved > 0 {
				log.Printf("Advanced %d sprint(s)", moved)
			}
		}
	}()
}

// StartCleanupTask prunes audit logs past the retention window.
func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		log.Printf("Starting background cleanup task (retention: %d days)", config.AuditRetentionDays)

		if err := auditService.CleanupOldLogs(config.AuditRetentionDays); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := auditService.CleanupOldLogs(config.AuditRetentionDays); err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			}
		}
	}()
}
