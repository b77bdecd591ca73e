// Package jobs provides scheduled background tasks for the workshop service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. NotificationRetryJob - Runs every minute to re-publish notifications
// that failed delivery and were parked in the outbox
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(outboxRepo, notifier, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The retry job logs broker failures and leaves the message parked with its
// attempt counter bumped; nothing is dropped on failure.
package jobs
