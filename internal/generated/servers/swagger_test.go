package servers_test

import (
	"testing"

	"fulfillment/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_LoadsEveryRoute(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	for _, path := range []string{
		"/health",
		"/fulfillment",
		"/fulfillment/{fulfillment_id}",
		"/fulfillment/{fulfillment_id}/status",
		"/fulfillment/{fulfillment_id}/lineItems",
		"/lineItem",
		"/lineItem/{line_item_id}",
		"/product",
		"/product/{product_id}",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestGetSwagger_EnumsMatchTypes(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	statuses := doc.Components.Schemas["FulfillmentStatus"].Value.Enum
	assert.ElementsMatch(t, []any{
		string(servers.New), string(servers.Initialized), string(servers.InProgress), string(servers.Fulfilled),
	}, statuses)

	types := doc.Components.Schemas["FulfillmentType"].Value.Enum
	assert.ElementsMatch(t, []any{string(servers.StockPickUp), string(servers.StockDelivery)}, types)
}
