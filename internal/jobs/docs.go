// Package jobs provides scheduled background tasks.
//
// Jobs are built on github.com/robfig/cron/v3 with six field expressions
// (seconds first).
//
// # Available Jobs
//
// LoadAuditJob runs FindInconsistentLoadsQueryHandler on a schedule and logs
// every Booked load without exactly one Accepted booking, and every load with
// more than one Accepted booking. It only reads; fixing a finding is left to
// an operator.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(findInconsistentLoadsHandler, config.AuditSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
