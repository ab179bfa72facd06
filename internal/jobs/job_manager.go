package jobs

import (
	"fmt"
	"log/slog"

	"github.com/Emagjby/LogiPack/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	chainAuditJob *ChainAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	listStreamsHandler queries.ListStreamsQueryHandler,
	verifyStreamHandler queries.VerifyStreamQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		chainAuditJob: NewChainAuditJob(listStreamsHandler, verifyStreamHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.chainAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start chain audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.chainAuditJob.Stop()
}
