package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/memory"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	e *echo.Echo
}

func (suite *ServerTestSuite) SetupTest() {
	suite.e = newTestEcho(suite.T(), memory.NewProvider())
}

func newTestEcho(t *testing.T, provider *memory.Provider) *echo.Echo {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateFulfillment:         commands.NewCreateFulfillmentCommandHandler(provider),
		SetFulfillmentStatus:      commands.NewSetFulfillmentStatusCommandHandler(provider),
		CreateLineItem:            commands.NewCreateLineItemCommandHandler(provider),
		CreateProduct:             commands.NewCreateProductCommandHandler(provider),
		GetFulfillment:            queries.NewGetFulfillmentQueryHandler(provider.FulfillmentRepository()),
		GetLineItem:               queries.NewGetLineItemQueryHandler(provider.LineItemRepository()),
		GetLineItemsByFulfillment: queries.NewGetLineItemsByFulfillmentQueryHandler(provider.LineItemRepository()),
		GetProduct:                queries.NewGetProductQueryHandler(provider.ProductRepository()),
	}, logger)

	doc, err := servers.GetSwagger()
	require.NoError(t, err)
	validator, err := httpadapter.NewRequestValidator(doc)
	require.NoError(t, err)

	e := echo.New()
	e.HTTPErrorHandler = httpadapter.HTTPErrorHandler
	e.Use(validator)
	servers.RegisterHandlers(e, server)
	return e
}

func (suite *ServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (suite *ServerTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Healthy", rec.Body.String())
}

func (suite *ServerTestSuite) TestLifecycleScenario() {
	t := suite.T()

	rec := suite.do(http.MethodPost, "/fulfillment", `{"fulfillment_type":"StockPickUp"}`)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	suite.Equal(servers.Fulfillment{Id: 1, FulfillmentType: servers.StockPickUp, Status: servers.New},
		decode[servers.Fulfillment](t, rec))

	rec = suite.do(http.MethodPost, "/lineItem", `{"fulfillment_id":1,"product_id":7,"quantity":3}`)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	suite.Equal(servers.LineItem{Id: 1, FulfillmentId: 1, ProductId: 7, Quantity: 3, QuantityFulfilled: 0},
		decode[servers.LineItem](t, rec))

	rec = suite.do(http.MethodPut, "/fulfillment/1/status", `{"fulfillment_status":"Initialized"}`)
	suite.Require().Equal(http.StatusAccepted, rec.Code, rec.Body.String())

	rec = suite.do(http.MethodPost, "/lineItem", `{"fulfillment_id":1,"product_id":7,"quantity":1}`)
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal(http.StatusBadRequest, decode[servers.Error](t, rec).Code)

	rec = suite.do(http.MethodPut, "/fulfillment/1/status", `{"fulfillment_status":"Fulfilled"}`)
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodPut, "/fulfillment/1/status", `{"fulfillment_status":"InProgress"}`)
	suite.Equal(http.StatusAccepted, rec.Code)
	rec = suite.do(http.MethodPut, "/fulfillment/1/status", `{"fulfillment_status":"Fulfilled"}`)
	suite.Equal(http.StatusAccepted, rec.Code)

	rec = suite.do(http.MethodGet, "/fulfillment/1", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal(servers.Fulfilled, decode[servers.Fulfillment](t, rec).Status)

	rec = suite.do(http.MethodGet, "/fulfillment/1/lineItems", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	items := decode[[]servers.LineItem](t, rec)
	suite.Require().Len(items, 1)
	suite.Equal(int64(1), items[0].Id)
}

func (suite *ServerTestSuite) TestSetStatus_UnknownFulfillmentIsBadRequest() {
	rec := suite.do(http.MethodPut, "/fulfillment/42/status", `{"fulfillment_status":"Initialized"}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(decode[servers.Error](suite.T(), rec).Message, "Failed to set fulfillment status")
}

func (suite *ServerTestSuite) TestRequestValidation() {
	cases := []struct {
		name, method, path, body string
	}{
		{"unknown type", http.MethodPost, "/fulfillment", `{"fulfillment_type":"Teleport"}`},
		{"missing type", http.MethodPost, "/fulfillment", `{}`},
		{"unknown status", http.MethodPut, "/fulfillment/1/status", `{"fulfillment_status":"Done"}`},
		{"zero quantity", http.MethodPost, "/lineItem", `{"fulfillment_id":1,"product_id":1,"quantity":0}`},
		{"negative id", http.MethodGet, "/lineItem/-1", ""},
		{"non numeric id", http.MethodGet, "/fulfillment/abc", ""},
		{"empty sku", http.MethodPost, "/product", `{"sku":""}`},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			rec := suite.do(tc.method, tc.path, tc.body)
			suite.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			suite.Equal(http.StatusBadRequest, decode[servers.Error](suite.T(), rec).Code)
		})
	}
}

func (suite *ServerTestSuite) TestGetLineItem() {
	suite.Require().Equal(http.StatusCreated,
		suite.do(http.MethodPost, "/fulfillment", `{"fulfillment_type":"StockDelivery"}`).Code)
	suite.Require().Equal(http.StatusCreated,
		suite.do(http.MethodPost, "/lineItem", `{"fulfillment_id":1,"product_id":2,"quantity":5}`).Code)

	rec := suite.do(http.MethodGet, "/lineItem/1", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal(int64(5), decode[servers.LineItem](suite.T(), rec).Quantity)

	rec = suite.do(http.MethodGet, "/lineItem/2", "")
	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Equal(http.StatusNotFound, decode[servers.Error](suite.T(), rec).Code)
}

func (suite *ServerTestSuite) TestGetLineItemsByFulfillment_EmptyArray() {
	rec := suite.do(http.MethodGet, "/fulfillment/9/lineItems", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`[]`, rec.Body.String())
}

func (suite *ServerTestSuite) TestGetFulfillment_NotFound() {
	rec := suite.do(http.MethodGet, "/fulfillment/3", "")

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerTestSuite) TestProducts() {
	rec := suite.do(http.MethodPost, "/product", `{"sku":"SKU-1","description":"widget"}`)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	suite.Equal(servers.Product{Id: 1, Sku: "SKU-1", Description: "widget"}, decode[servers.Product](suite.T(), rec))

	rec = suite.do(http.MethodGet, "/product/1", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal("widget", decode[servers.Product](suite.T(), rec).Description)

	rec = suite.do(http.MethodGet, "/product/2", "")
	suite.Equal(http.StatusNotFound, rec.Code)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestHTTPErrorHandler_RendersJSON(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = httpadapter.HTTPErrorHandler
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"code":404,"message":"Not Found"}`, rec.Body.String())
}
