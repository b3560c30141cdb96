// Package http exposes the order desk as a JSON API over echo.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RegisterDocs serves doc and a Swagger UI for it under /swagger/.
func RegisterDocs(router EchoRouter, doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	if swag.GetSwagger(swag.Name) == nil {
		swag.Register(swag.Name, &swag.Spec{
			Title:            doc.Info.Title,
			Version:          doc.Info.Version,
			Description:      doc.Info.Description,
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(raw),
		})
	}

	router.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}

// RegisterHealth adds the liveness probe.
func RegisterHealth(router EchoRouter) {
	router.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
}
