package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultStatusReportSchedule is used when no schedule is configured.
const DefaultStatusReportSchedule = "@every 1m"

// StatusSummaryHandler is the query the report job runs on every tick.
type StatusSummaryHandler interface {
	Handle(
		ctx context.Context,
		query queries.GetFulfillmentStatusSummaryQuery,
	) (queries.GetFulfillmentStatusSummaryQueryResponse, error)
}

// FulfillmentStatusReportJob periodically logs how many fulfillments sit in
// each status. It only reads.
type FulfillmentStatusReportJob struct {
	handler  StatusSummaryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewFulfillmentStatusReportJob creates the report job. schedule is any expression
// accepted by cron.ParseStandard, including descriptors such as "@every 30s".
func NewFulfillmentStatusReportJob(
	handler StatusSummaryHandler,
	schedule string,
	logger *slog.Logger,
) *FulfillmentStatusReportJob {
	if schedule == "" {
		schedule = DefaultStatusReportSchedule
	}
	return &FulfillmentStatusReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "fulfillment_status_report_job"),
	}
}

// Start registers the report with the scheduler and starts it.
func (j *FulfillmentStatusReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fulfillment status report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *FulfillmentStatusReportJob) Run(ctx context.Context) {
	summary, err := j.handler.Handle(ctx, queries.NewGetFulfillmentStatusSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Fulfillment status report failed", "error", err)
		return
	}

	attrs := make([]any, 0, 2*len(summary.Counts)+2)
	for _, c := range summary.Counts {
		attrs = append(attrs, c.Status.String(), c.Count)
	}
	attrs = append(attrs, "total", summary.Total)
	j.logger.InfoContext(ctx, "Fulfillment status report", attrs...)
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *FulfillmentStatusReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Fulfillment status report job stopped")
}
