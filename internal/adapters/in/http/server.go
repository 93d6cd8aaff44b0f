package http

import (
	"log/slog"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createFulfillmentHandler    commands.CreateFulfillmentCommandHandler
	setFulfillmentStatusHandler commands.SetFulfillmentStatusCommandHandler
	createLineItemHandler       commands.CreateLineItemCommandHandler
	createProductHandler        commands.CreateProductCommandHandler

	// Query handlers
	getFulfillmentHandler            queries.GetFulfillmentQueryHandler
	getLineItemHandler               queries.GetLineItemQueryHandler
	getLineItemsByFulfillmentHandler queries.GetLineItemsByFulfillmentQueryHandler
	getProductHandler                queries.GetProductQueryHandler

	logger *slog.Logger
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateFulfillment         commands.CreateFulfillmentCommandHandler
	SetFulfillmentStatus      commands.SetFulfillmentStatusCommandHandler
	CreateLineItem            commands.CreateLineItemCommandHandler
	CreateProduct             commands.CreateProductCommandHandler
	GetFulfillment            queries.GetFulfillmentQueryHandler
	GetLineItem               queries.GetLineItemQueryHandler
	GetLineItemsByFulfillment queries.GetLineItemsByFulfillmentQueryHandler
	GetProduct                queries.GetProductQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		createFulfillmentHandler:         handlers.CreateFulfillment,
		setFulfillmentStatusHandler:      handlers.SetFulfillmentStatus,
		createLineItemHandler:            handlers.CreateLineItem,
		createProductHandler:             handlers.CreateProduct,
		getFulfillmentHandler:            handlers.GetFulfillment,
		getLineItemHandler:               handlers.GetLineItem,
		getLineItemsByFulfillmentHandler: handlers.GetLineItemsByFulfillment,
		getProductHandler:                handlers.GetProduct,
		logger:                           logger.With("component", "http_server"),
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateFulfillment handles POST /fulfillment - opens a fulfillment in status New.
func (s *Server) CreateFulfillment(ctx echo.Context) error {
	var body servers.CreateFulfillmentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	fulfillmentType, err := fulfillment.ParseType(string(body.FulfillmentType))
	if err != nil {
		return s.fail(ctx, err, "Invalid fulfillment data")
	}
	cmd, err := commands.NewCreateFulfillmentCommand(fulfillmentType)
	if err != nil {
		return s.fail(ctx, err, "Invalid fulfillment data")
	}

	id, err := s.createFulfillmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create fulfillment")
	}

	return ctx.JSON(http.StatusCreated, servers.Fulfillment{
		Id:              id.Int64(),
		FulfillmentType: body.FulfillmentType,
		Status:          servers.New,
	})
}

// GetFulfillment handles GET /fulfillment/:fulfillment_id.
func (s *Server) GetFulfillment(ctx echo.Context, fulfillmentID servers.FulfillmentId) error {
	id, err := kernel.NewID(fulfillmentID)
	if err != nil {
		return s.fail(ctx, err, "Invalid fulfillment id")
	}
	query, err := queries.NewGetFulfillmentQuery(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid fulfillment id")
	}

	resp, err := s.getFulfillmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve fulfillment")
	}

	return ctx.JSON(http.StatusOK, servers.Fulfillment{
		Id:              resp.ID.Int64(),
		FulfillmentType: servers.FulfillmentType(resp.Type.String()),
		Status:          servers.FulfillmentStatus(resp.Status.String()),
	})
}

// SetFulfillmentStatus handles PUT /fulfillment/:fulfillment_id/status.
// 202 means the transition was applied; an unknown id or an illegal
// transition is a 400.
func (s *Server) SetFulfillmentStatus(ctx echo.Context, fulfillmentID servers.FulfillmentId) error {
	var body servers.SetFulfillmentStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	id, err := kernel.NewID(fulfillmentID)
	if err != nil {
		return s.fail(ctx, err, "Invalid fulfillment id")
	}
	status, err := fulfillment.ParseStatus(string(body.FulfillmentStatus))
	if err != nil {
		return s.fail(ctx, err, "Invalid fulfillment status")
	}
	cmd, err := commands.NewSetFulfillmentStatusCommand(id, status)
	if err != nil {
		return s.fail(ctx, err, "Invalid fulfillment status")
	}

	if err = s.setFulfillmentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to set fulfillment status")
	}

	return ctx.NoContent(http.StatusAccepted)
}

// GetLineItemsByFulfillment handles GET /fulfillment/:fulfillment_id/lineItems.
func (s *Server) GetLineItemsByFulfillment(ctx echo.Context, fulfillmentID servers.FulfillmentId) error {
	id, err := kernel.NewID(fulfillmentID)
	if err != nil {
		return s.fail(ctx, err, "Invalid fulfillment id")
	}
	query, err := queries.NewGetLineItemsByFulfillmentQuery(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid fulfillment id")
	}

	items, err := s.getLineItemsByFulfillmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve line items")
	}

	response := make([]servers.LineItem, len(items))
	for i, item := range items {
		response[i] = toLineItem(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateLineItem handles POST /lineItem.
func (s *Server) CreateLineItem(ctx echo.Context) error {
	var body servers.CreateLineItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	fulfillmentID, err := kernel.NewID(body.FulfillmentId)
	if err != nil {
		return s.fail(ctx, err, "Invalid line item data")
	}
	productID, err := kernel.NewID(body.ProductId)
	if err != nil {
		return s.fail(ctx, err, "Invalid line item data")
	}
	cmd, err := commands.NewCreateLineItemCommand(fulfillmentID, productID, body.Quantity)
	if err != nil {
		return s.fail(ctx, err, "Invalid line item data")
	}

	id, err := s.createLineItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create line item")
	}

	return ctx.JSON(http.StatusCreated, servers.LineItem{
		Id:                id.Int64(),
		FulfillmentId:     body.FulfillmentId,
		ProductId:         body.ProductId,
		Quantity:          body.Quantity,
		QuantityFulfilled: 0,
	})
}

// GetLineItem handles GET /lineItem/:line_item_id.
func (s *Server) GetLineItem(ctx echo.Context, lineItemID int64) error {
	id, err := kernel.NewID(lineItemID)
	if err != nil {
		return s.fail(ctx, err, "Invalid line item id")
	}
	query, err := queries.NewGetLineItemQuery(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid line item id")
	}

	item, err := s.getLineItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve line item")
	}

	return ctx.JSON(http.StatusOK, toLineItem(item))
}

// CreateProduct handles POST /product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.CreateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	var description string
	if body.Description != nil {
		description = *body.Description
	}
	cmd, err := commands.NewCreateProductCommand(body.Sku, description)
	if err != nil {
		return s.fail(ctx, err, "Invalid product data")
	}

	id, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create product")
	}

	return ctx.JSON(http.StatusCreated, servers.Product{
		Id:          id.Int64(),
		Sku:         cmd.SKU(),
		Description: cmd.Description(),
	})
}

// GetProduct handles GET /product/:product_id.
func (s *Server) GetProduct(ctx echo.Context, productID int64) error {
	id, err := kernel.NewID(productID)
	if err != nil {
		return s.fail(ctx, err, "Invalid product id")
	}
	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid product id")
	}

	p, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve product")
	}

	return ctx.JSON(http.StatusOK, servers.Product{
		Id:          p.ID.Int64(),
		Sku:         p.SKU,
		Description: p.Description,
	})
}

func toLineItem(item queries.LineItemResponse) servers.LineItem {
	return servers.LineItem{
		Id:                item.ID.Int64(),
		FulfillmentId:     item.FulfillmentID.Int64(),
		ProductId:         item.ProductID.Int64(),
		Quantity:          item.Quantity,
		QuantityFulfilled: item.QuantityFulfilled,
	}
}
