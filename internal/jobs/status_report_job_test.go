package jobs_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatusSummaryHandler struct{ mock.Mock }

func (m *MockStatusSummaryHandler) Handle(
	ctx context.Context,
	query queries.GetFulfillmentStatusSummaryQuery,
) (queries.GetFulfillmentStatusSummaryQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetFulfillmentStatusSummaryQueryResponse), args.Error(1)
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestFulfillmentStatusReportJob_Run_LogsCounts(t *testing.T) {
	var buf bytes.Buffer
	handler := new(MockStatusSummaryHandler)
	handler.On("Handle", mock.Anything, mock.AnythingOfType("queries.GetFulfillmentStatusSummaryQuery")).
		Return(queries.GetFulfillmentStatusSummaryQueryResponse{
			Counts: []queries.StatusCount{
				{Status: fulfillment.New, Count: 2},
				{Status: fulfillment.Initialized, Count: 0},
				{Status: fulfillment.InProgress, Count: 1},
				{Status: fulfillment.Fulfilled, Count: 4},
			},
			Total: 7,
		}, nil).Once()

	job := jobs.NewFulfillmentStatusReportJob(handler, "", newTestLogger(&buf))
	job.Run(t.Context())

	out := buf.String()
	assert.Contains(t, out, "Fulfillment status report")
	assert.Contains(t, out, "component=fulfillment_status_report_job")
	assert.Contains(t, out, "New=2")
	assert.Contains(t, out, "InProgress=1")
	assert.Contains(t, out, "Fulfilled=4")
	assert.Contains(t, out, "total=7")
	handler.AssertExpectations(t)
}

func TestFulfillmentStatusReportJob_Run_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	handler := new(MockStatusSummaryHandler)
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetFulfillmentStatusSummaryQueryResponse{}, errs.NewProviderFailureError("count fulfillments")).
		Once()

	job := jobs.NewFulfillmentStatusReportJob(handler, "", newTestLogger(&buf))
	job.Run(t.Context())

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "Fulfillment status report failed")
}

func TestFulfillmentStatusReportJob_StartStop(t *testing.T) {
	var buf bytes.Buffer
	job := jobs.NewFulfillmentStatusReportJob(new(MockStatusSummaryHandler), "@every 1h", newTestLogger(&buf))

	require.NoError(t, job.Start())
	job.Stop()

	assert.Contains(t, buf.String(), "schedule=\"@every 1h\"")
	assert.Contains(t, buf.String(), "Fulfillment status report job stopped")
}

func TestJobManager_StartAll_InvalidSchedule(t *testing.T) {
	var buf bytes.Buffer
	manager := jobs.NewJobManager(new(MockStatusSummaryHandler), "not a schedule", newTestLogger(&buf))

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start fulfillment status report job")
}
