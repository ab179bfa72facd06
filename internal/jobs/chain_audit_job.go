package jobs

import (
	"context"
	"log/slog"

	"github.com/Emagjby/LogiPack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// chainAuditSchedule runs the sweep every ten minutes.
const chainAuditSchedule = "0 */10 * * * *"

// ChainAuditJob periodically sweeps every event stream and re-verifies its
// hash chain: recomputed content hashes, previous-hash links, gapless
// sequence numbers and the stream head. A violation means the stored history
// was tampered with or corrupted, so it is logged at error level.
type ChainAuditJob struct {
	listStreams  queries.ListStreamsQueryHandler
	verifyStream queries.VerifyStreamQueryHandler
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewChainAuditJob creates the periodic chain verification job.
func NewChainAuditJob(
	listStreams queries.ListStreamsQueryHandler,
	verifyStream queries.VerifyStreamQueryHandler,
	logger *slog.Logger,
) *ChainAuditJob {
	return &ChainAuditJob{
		listStreams:  listStreams,
		verifyStream: verifyStream,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "chain_audit_job"),
	}
}

// Start schedules the audit sweep.
func (j *ChainAuditJob) Start() error {
	_, err := j.cron.AddFunc(chainAuditSchedule, j.runSweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Chain audit job started (running every ten minutes)")
	return nil
}

// Stop stops the audit job.
func (j *ChainAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Chain audit job stopped")
}

// runSweep verifies every stream once. A failure to verify one stream is
// logged and does not stop the sweep.
func (j *ChainAuditJob) runSweep() {
	ctx := context.Background()

	streams, err := j.listStreams.Handle(ctx, queries.NewListStreamsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Chain audit sweep failed to list streams", "error", err)
		return
	}

	violated := 0
	for _, stream := range streams {
		query, queryErr := queries.NewVerifyStreamQuery(stream.ID)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Chain audit sweep skipped stream",
				"stream_id", stream.ID.String(), "error", queryErr)
			continue
		}

		report, verifyErr := j.verifyStream.Handle(ctx, query)
		if verifyErr != nil {
			j.logger.ErrorContext(ctx, "Chain audit sweep failed to verify stream",
				"stream_id", stream.ID.String(), "error", verifyErr)
			continue
		}

		if !report.OK {
			violated++
			j.logger.ErrorContext(ctx, "Chain integrity violation detected",
				"stream_id", report.StreamID.String(),
				"kind", stream.Kind,
				"package_count", report.PackageCount,
				"violations", report.Violations)
		}
	}

	j.logger.InfoContext(ctx, "Chain audit sweep completed",
		"streams", len(streams), "violated", violated)
}
