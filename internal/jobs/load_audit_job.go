package jobs

import (
	"context"
	"log/slog"

	"loadbook/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultAuditSchedule runs the audit at the start of every minute.
const DefaultAuditSchedule = "0 * * * * *"

type inconsistencyFinder interface {
	Handle(ctx context.Context, query queries.FindInconsistentLoadsQuery) ([]queries.InconsistentLoad, error)
}

// LoadAuditJob periodically looks for loads whose status disagrees with
// their bookings and reports them at WARN level. It never repairs anything.
type LoadAuditJob struct {
	finder   inconsistencyFinder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLoadAuditJob creates the audit job. schedule is a six field cron
// expression (seconds first); empty means DefaultAuditSchedule.
func NewLoadAuditJob(finder inconsistencyFinder, schedule string, logger *slog.Logger) *LoadAuditJob {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}

	return &LoadAuditJob{
		finder:   finder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "load_audit_job"),
	}
}

func (j *LoadAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Load audit job started", "schedule", j.schedule)
	return nil
}

// Run performs one audit pass and returns the number of findings.
func (j *LoadAuditJob) Run(ctx context.Context) int {
	findings, err := j.finder.Handle(ctx, queries.NewFindInconsistentLoadsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Load audit failed", "error", err)
		return 0
	}

	for _, found := range findings {
		j.logger.WarnContext(ctx, "Load status disagrees with its bookings",
			"load_id", found.LoadID.String(),
			"status", found.Status.String(),
			"pending_bookings", found.Pending,
			"accepted_bookings", found.Accepted,
		)
	}
	return len(findings)
}

// Stop waits for a running audit pass to finish.
func (j *LoadAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Load audit job stopped")
}
