package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// (POST /fulfillment)
	CreateFulfillment(ctx echo.Context) error
	// (GET /fulfillment/{fulfillment_id})
	GetFulfillment(ctx echo.Context, fulfillmentId FulfillmentId) error
	// (GET /fulfillment/{fulfillment_id}/lineItems)
	GetLineItemsByFulfillment(ctx echo.Context, fulfillmentId FulfillmentId) error
	// (PUT /fulfillment/{fulfillment_id}/status)
	SetFulfillmentStatus(ctx echo.Context, fulfillmentId FulfillmentId) error
	// (POST /lineItem)
	CreateLineItem(ctx echo.Context) error
	// (GET /lineItem/{line_item_id})
	GetLineItem(ctx echo.Context, lineItemId int64) error
	// (POST /product)
	CreateProduct(ctx echo.Context) error
	// (GET /product/{product_id})
	GetProduct(ctx echo.Context, productId int64) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

// CreateFulfillment converts echo context to params.
func (w *ServerInterfaceWrapper) CreateFulfillment(ctx echo.Context) error {
	return w.Handler.CreateFulfillment(ctx)
}

// GetFulfillment converts echo context to params.
func (w *ServerInterfaceWrapper) GetFulfillment(ctx echo.Context) error {
	fulfillmentId, err := bindPathInt64(ctx, "fulfillment_id")
	if err != nil {
		return err
	}
	return w.Handler.GetFulfillment(ctx, fulfillmentId)
}

// GetLineItemsByFulfillment converts echo context to params.
func (w *ServerInterfaceWrapper) GetLineItemsByFulfillment(ctx echo.Context) error {
	fulfillmentId, err := bindPathInt64(ctx, "fulfillment_id")
	if err != nil {
		return err
	}
	return w.Handler.GetLineItemsByFulfillment(ctx, fulfillmentId)
}

// SetFulfillmentStatus converts echo context to params.
func (w *ServerInterfaceWrapper) SetFulfillmentStatus(ctx echo.Context) error {
	fulfillmentId, err := bindPathInt64(ctx, "fulfillment_id")
	if err != nil {
		return err
	}
	return w.Handler.SetFulfillmentStatus(ctx, fulfillmentId)
}

// CreateLineItem converts echo context to params.
func (w *ServerInterfaceWrapper) CreateLineItem(ctx echo.Context) error {
	return w.Handler.CreateLineItem(ctx)
}

// GetLineItem converts echo context to params.
func (w *ServerInterfaceWrapper) GetLineItem(ctx echo.Context) error {
	lineItemId, err := bindPathInt64(ctx, "line_item_id")
	if err != nil {
		return err
	}
	return w.Handler.GetLineItem(ctx, lineItemId)
}

// CreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	return w.Handler.CreateProduct(ctx)
}

// GetProduct converts echo context to params.
func (w *ServerInterfaceWrapper) GetProduct(ctx echo.Context) error {
	productId, err := bindPathInt64(ctx, "product_id")
	if err != nil {
		return err
	}
	return w.Handler.GetProduct(ctx, productId)
}

func bindPathInt64(ctx echo.Context, name string) (int64, error) {
	var value int64
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.POST(baseURL+"/fulfillment", wrapper.CreateFulfillment)
	router.GET(baseURL+"/fulfillment/:fulfillment_id", wrapper.GetFulfillment)
	router.GET(baseURL+"/fulfillment/:fulfillment_id/lineItems", wrapper.GetLineItemsByFulfillment)
	router.PUT(baseURL+"/fulfillment/:fulfillment_id/status", wrapper.SetFulfillmentStatus)
	router.POST(baseURL+"/lineItem", wrapper.CreateLineItem)
	router.GET(baseURL+"/lineItem/:line_item_id", wrapper.GetLineItem)
	router.POST(baseURL+"/product", wrapper.CreateProduct)
	router.GET(baseURL+"/product/:product_id", wrapper.GetProduct)
}
