// Package servers holds the HTTP contract of the service: the OpenAPI
// document, its request and response types, and the echo routing glue that
// binds path parameters before calling a ServerInterface.
package servers

// Defines values for FulfillmentType.
const (
	StockDelivery FulfillmentType = "StockDelivery"
	StockPickUp   FulfillmentType = "StockPickUp"
)

// Defines values for FulfillmentStatus.
const (
	Fulfilled   FulfillmentStatus = "Fulfilled"
	InProgress  FulfillmentStatus = "InProgress"
	Initialized FulfillmentStatus = "Initialized"
	New         FulfillmentStatus = "New"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Fulfillment defines model for Fulfillment.
type Fulfillment struct {
	FulfillmentType FulfillmentType   `json:"fulfillment_type"`
	Id              int64             `json:"id"`
	Status          FulfillmentStatus `json:"status"`
}

// FulfillmentStatus defines model for FulfillmentStatus.
type FulfillmentStatus string

// FulfillmentType defines model for FulfillmentType.
type FulfillmentType string

// LineItem defines model for LineItem.
type LineItem struct {
	FulfillmentId     int64 `json:"fulfillment_id"`
	Id                int64 `json:"id"`
	ProductId         int64 `json:"product_id"`
	Quantity          int64 `json:"quantity"`
	QuantityFulfilled int64 `json:"quantity_fulfilled"`
}

// NewFulfillment defines model for NewFulfillment.
type NewFulfillment struct {
	FulfillmentType FulfillmentType `json:"fulfillment_type"`
}

// NewLineItem defines model for NewLineItem.
type NewLineItem struct {
	FulfillmentId int64 `json:"fulfillment_id"`
	ProductId     int64 `json:"product_id"`
	Quantity      int64 `json:"quantity"`
}

// NewProduct defines model for NewProduct.
type NewProduct struct {
	Description *string `json:"description,omitempty"`
	Sku         string  `json:"sku"`
}

// Product defines model for Product.
type Product struct {
	Description string `json:"description"`
	Id          int64  `json:"id"`
	Sku         string `json:"sku"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	FulfillmentStatus FulfillmentStatus `json:"fulfillment_status"`
}

// FulfillmentId defines model for FulfillmentId.
type FulfillmentId = int64

// CreateFulfillmentJSONRequestBody defines body for CreateFulfillment for application/json ContentType.
type CreateFulfillmentJSONRequestBody = NewFulfillment

// SetFulfillmentStatusJSONRequestBody defines body for SetFulfillmentStatus for application/json ContentType.
type SetFulfillmentStatusJSONRequestBody = StatusChange

// CreateLineItemJSONRequestBody defines body for CreateLineItem for application/json ContentType.
type CreateLineItemJSONRequestBody = NewLineItem

// CreateProductJSONRequestBody defines body for CreateProduct for application/json ContentType.
type CreateProductJSONRequestBody = NewProduct
