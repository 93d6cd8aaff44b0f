package cmd

import (
	"log/slog"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
)

// CompositionRoot builds the use cases, the HTTP server and the jobs on top
// of one storage provider.
type CompositionRoot struct {
	config   Config
	provider ports.Provider
	logger   *slog.Logger
}

func NewCompositionRoot(config Config, provider ports.Provider, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:   config,
		provider: provider,
		logger:   logger,
	}
}

// Provider returns the storage provider the root was built with.
func (c *CompositionRoot) Provider() ports.Provider {
	return c.provider
}

func (c *CompositionRoot) CreateCreateFulfillmentCommandHandler() commands.CreateFulfillmentCommandHandler {
	return commands.NewCreateFulfillmentCommandHandler(c.provider)
}

func (c *CompositionRoot) CreateSetFulfillmentStatusCommandHandler() commands.SetFulfillmentStatusCommandHandler {
	return commands.NewSetFulfillmentStatusCommandHandler(c.provider)
}

func (c *CompositionRoot) CreateCreateLineItemCommandHandler() commands.CreateLineItemCommandHandler {
	return commands.NewCreateLineItemCommandHandler(c.provider)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.provider)
}

func (c *CompositionRoot) CreateGetFulfillmentQueryHandler() queries.GetFulfillmentQueryHandler {
	return queries.NewGetFulfillmentQueryHandler(c.provider.FulfillmentRepository())
}

func (c *CompositionRoot) CreateGetLineItemQueryHandler() queries.GetLineItemQueryHandler {
	return queries.NewGetLineItemQueryHandler(c.provider.LineItemRepository())
}

func (c *CompositionRoot) CreateGetLineItemsByFulfillmentQueryHandler() queries.GetLineItemsByFulfillmentQueryHandler {
	return queries.NewGetLineItemsByFulfillmentQueryHandler(c.provider.LineItemRepository())
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.provider.ProductRepository())
}

func (c *CompositionRoot) CreateGetFulfillmentStatusSummaryQueryHandler() queries.GetFulfillmentStatusSummaryQueryHandler {
	return queries.NewGetFulfillmentStatusSummaryQueryHandler(c.provider.FulfillmentRepository())
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateFulfillment:         c.CreateCreateFulfillmentCommandHandler(),
		SetFulfillmentStatus:      c.CreateSetFulfillmentStatusCommandHandler(),
		CreateLineItem:            c.CreateCreateLineItemCommandHandler(),
		CreateProduct:             c.CreateCreateProductCommandHandler(),
		GetFulfillment:            c.CreateGetFulfillmentQueryHandler(),
		GetLineItem:               c.CreateGetLineItemQueryHandler(),
		GetLineItemsByFulfillment: c.CreateGetLineItemsByFulfillmentQueryHandler(),
		GetProduct:                c.CreateGetProductQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetFulfillmentStatusSummaryQueryHandler(),
		c.config.ReportSchedule,
		c.logger,
	)
}
