package utils

import (
	"log"
	"time"

	"formadmin/config"
	"formadmin/database"
	"formadmin/services/duration"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[DURATION-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializeDurationScheduler sets up the nightly consistency scan
func InitializeDurationScheduler() {
	if !config.AppConfig.SchedulerEnabled {
		logScheduler("Scheduler disabled by configuration.")
		return
	}

	logScheduler("Initializing duration scheduler...")

	c := cron.New()

	// Run nightly at 2 AM, after the imports and before the morning staff
	c.AddFunc("0 2 * * *", func() {
		logScheduler("Running nightly duration consistency scan...")
		RunConsistencyScan()
	})

	c.Start()
	logScheduler("Duration scheduler started.")
}

// RunConsistencyScan logs drift statistics for every level and, when auto-sync
// is enabled, repairs the drift with a full bottom-up pass.
func RunConsistencyScan() {
	svc := duration.NewService(duration.NewGormStore(database.Database.Db))
	svc.ClearCache()

	stats, err := svc.AllStats()
	if err != nil {
		logScheduler("Consistency scan failed: " + err.Error())
		return
	}

	drifted := 0
	for _, level := range duration.SyncOrder {
		s := stats[level]
		drifted += s.Inconsistencies
		log.Printf("[DURATION-SCHEDULER] level=%s total=%d inconsistencies=%d (%.2f%%)",
			level, s.Total, s.Inconsistencies, s.Percentage)
	}

	if drifted == 0 {
		logScheduler("All durations consistent.")
		return
	}

	if !config.AppConfig.NightlyAutoSync {
		logScheduler("Drift detected, auto-sync disabled; waiting for manual sync.")
		return
	}

	result, err := svc.SyncAll(duration.LevelAll, config.AppConfig.SyncBatchSize)
	if err != nil {
		logScheduler("Nightly auto-sync aborted: " + err.Error())
	}
	log.Printf("[DURATION-SCHEDULER] nightly auto-sync done synced=%d errors=%d",
		result.Synced, len(result.Errors))

	NotifySyncCompleted(SyncWebhookPayload{
		EntityType: "all",
		Synced:     result.Synced,
		Errors:     result.Errors,
		Partial:    len(result.Errors) > 0 || err != nil,
	})
}
