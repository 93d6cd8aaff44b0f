package http

import (
	"net/http"

	"fulfillment/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

// RegisterSwagger publishes doc to the swag registry and mounts the UI at
// /swagger/*. The document is registered once per process.
func RegisterSwagger(e *echo.Echo, doc *openapi3.T) error {
	if swag.GetSwagger(swag.Name) == nil {
		raw, err := doc.MarshalJSON()
		if err != nil {
			return err
		}
		swag.Register(swag.Name, openAPIDoc{json: string(raw)})
	}

	e.GET("/swagger/openapi.yaml", func(ctx echo.Context) error {
		return ctx.Blob(http.StatusOK, "application/yaml", servers.RawOpenAPI())
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
