package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of api/openapi.yml.
type ServerInterface interface {
	GetCurrentOrder(ctx echo.Context) error
	AddItem(ctx echo.Context) error
	RemoveItem(ctx echo.Context, position int) error
	SetOrderNumber(ctx echo.Context) error
	ResetOrder(ctx echo.Context) error
	StartNewOrder(ctx echo.Context) error
	PlaceOrder(ctx echo.Context) error
	GetPlacedOrders(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetCurrentOrder(ctx echo.Context) error {
	return w.Handler.GetCurrentOrder(ctx)
}

func (w *ServerInterfaceWrapper) AddItem(ctx echo.Context) error {
	return w.Handler.AddItem(ctx)
}

func (w *ServerInterfaceWrapper) RemoveItem(ctx echo.Context) error {
	var position int

	err := runtime.BindStyledParameterWithOptions("simple", "position", ctx.Param("position"), &position,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Invalid format for parameter position: %s", err),
		})
	}

	return w.Handler.RemoveItem(ctx, position)
}

func (w *ServerInterfaceWrapper) SetOrderNumber(ctx echo.Context) error {
	return w.Handler.SetOrderNumber(ctx)
}

func (w *ServerInterfaceWrapper) ResetOrder(ctx echo.Context) error {
	return w.Handler.ResetOrder(ctx)
}

func (w *ServerInterfaceWrapper) StartNewOrder(ctx echo.Context) error {
	return w.Handler.StartNewOrder(ctx)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetPlacedOrders(ctx echo.Context) error {
	return w.Handler.GetPlacedOrders(ctx)
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/api/v1/order", wrapper.GetCurrentOrder)
	router.POST("/api/v1/order/items", wrapper.AddItem)
	router.DELETE("/api/v1/order/items/:position", wrapper.RemoveItem)
	router.PUT("/api/v1/order/number", wrapper.SetOrderNumber)
	router.POST("/api/v1/order/reset", wrapper.ResetOrder)
	router.POST("/api/v1/order/new", wrapper.StartNewOrder)
	router.POST("/api/v1/order/place", wrapper.PlaceOrder)
	router.GET("/api/v1/orders", wrapper.GetPlacedOrders)
}
