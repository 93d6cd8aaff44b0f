// Package jobs provides scheduled background tasks for the fulfillment service.
//
// Jobs are built on github.com/robfig/cron/v3 and log through log/slog.
// None of them mutates fulfillments: status changes only happen through
// explicit requests, so a job can never race a client for a transition.
//
// # Available Jobs
//
//  1. FulfillmentStatusReportJob - counts fulfillments per status and logs the result
//
// # Usage
//
//	jobManager := jobs.NewJobManager(statusSummaryHandler, "@every 1m", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule is a standard five-field cron expression or a descriptor such as
// "@every 1m". An invalid schedule makes StartAll fail.
//
// # Error Handling
//
// A failed report is logged at error level and the next tick runs normally.
package jobs
