// Package jobs provides scheduled background tasks for the shipment tracking
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. ChainAuditJob - Runs every ten minutes to re-verify the hash chain of
// every event stream and log any integrity violation
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(listStreamsHandler, verifyStreamHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A stream that fails to verify is logged and skipped; the sweep continues
// with the remaining streams. Failed job starts will stop any already
// running jobs.
package jobs
