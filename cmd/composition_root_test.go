package cmd_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/out/memory"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/fulfillment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_HandlersShareProvider(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	root := cmd.NewCompositionRoot(cmd.Config{ReportSchedule: "@every 1h"}, memory.NewProvider(), logger)

	createCmd, err := commands.NewCreateFulfillmentCommand(fulfillment.StockDelivery)
	require.NoError(t, err)
	create := root.CreateCreateFulfillmentCommandHandler()
	id, err := create.Handle(ctx, createCmd)
	require.NoError(t, err)

	query, err := queries.NewGetFulfillmentQuery(id)
	require.NoError(t, err)
	resp, err := root.CreateGetFulfillmentQueryHandler().Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, fulfillment.New, resp.Status)

	summary, err := root.CreateGetFulfillmentStatusSummaryQueryHandler().
		Handle(ctx, queries.NewGetFulfillmentStatusSummaryQuery())
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Total)

	assert.NotNil(t, root.CreateHTTPServer())

	jobManager := root.CreateJobManager()
	require.NoError(t, jobManager.StartAll())
	jobManager.StopAll()
}
