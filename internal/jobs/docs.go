// Package jobs provides opt-in scheduled background tasks built on
// github.com/robfig/cron/v3. The dispatch core needs none of them.
//
// # Available Jobs
//
//  1. PendingAssignmentJob - re-invokes partner assignment for accepted delivery
//     orders that are still without a partner (ASSIGN_RETRY_SCHEDULE)
//  2. WalletReconciliationJob - checks every wallet balance against its ledger
//     (RECONCILE_SCHEDULE)
//
// Both are disabled unless their schedule is configured.
//
// # Usage
//
//	var retry jobs.Job
//	if cfg.AssignRetrySchedule != "" {
//		retry = jobs.NewPendingAssignmentJob(awaitingHandler, assignHandler, cfg.AssignRetrySchedule, logger)
//	}
//	manager := jobs.NewJobManager(retry)
//	if err := manager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
//   - "no partner available" ends an assignment pass early and is not an error
//   - transient failures are logged at warn level and retried on the next run
//   - runs never overlap: a run still in progress skips the next tick
package jobs
