package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	loadAuditJob *LoadAuditJob
}

// NewJobManager wires every scheduled job.
func NewJobManager(auditFinder inconsistencyFinder, auditSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		loadAuditJob: NewLoadAuditJob(auditFinder, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.loadAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start load audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.loadAuditJob.Stop()
}
