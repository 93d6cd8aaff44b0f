package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	statusReportJob *FulfillmentStatusReportJob
}

// NewJobManager creates a job manager with every background job of the service.
func NewJobManager(
	statusSummaryHandler StatusSummaryHandler,
	statusReportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statusReportJob: NewFulfillmentStatusReportJob(statusSummaryHandler, statusReportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.statusReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start fulfillment status report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusReportJob.Stop()
}
