package utils

import (
	"learnvilla/config"
	"learnvilla/database"
	"learnvilla/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// purgeOldLoginTracking hard-deletes login tracking rows past the retention
// window.
func purgeOldLoginTracking() {
	days := config.AppConfig.LoginRetentionDays
	cutoff := time.Now().AddDate(0, 0, -days)

	result := database.Database.Db.Unscoped().
		Where("timestamp < ?", cutoff).
		Delete(&models.LoginTracking{})
	if result.Error != nil {
		log.Printf("[RETENTION] Error purging login tracking: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[RETENTION] Purged %d login tracking rows older than %d days", result.RowsAffected, days)
	}
}

// InitializeRetentionScheduler starts the daily cleanup job.
func InitializeRetentionScheduler() *cron.Cron {
	c := cron.New()

	// Daily at 03:00
	if _, err := c.AddFunc("0 3 * * *", purgeOldLoginTracking); err != nil {
		log.Printf("[RETENTION] Failed to schedule cleanup job: %v", err)
		return c
	}

	c.Start()
	log.Println("[RETENTION] Login tracking cleanup scheduled")
	return c
}
