package http

import (
	"net/http"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

var _ ServerInterface = (*Server)(nil)

// Server implements ServerInterface on top of the order desk use cases.
type Server struct {
	// Command handlers
	addItemHandler        commands.AddItemCommandHandler
	removeItemHandler     commands.RemoveItemCommandHandler
	setOrderNumberHandler commands.SetOrderNumberCommandHandler
	resetOrderHandler     commands.ResetOrderCommandHandler
	startNewOrderHandler  commands.StartNewOrderCommandHandler
	placeOrderHandler     commands.PlaceOrderCommandHandler

	// Query handlers
	getCurrentOrderHandler queries.GetCurrentOrderQueryHandler
	getPlacedOrdersHandler queries.GetPlacedOrdersQueryHandler

	now func() time.Time
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	AddItem         commands.AddItemCommandHandler
	RemoveItem      commands.RemoveItemCommandHandler
	SetOrderNumber  commands.SetOrderNumberCommandHandler
	ResetOrder      commands.ResetOrderCommandHandler
	StartNewOrder   commands.StartNewOrderCommandHandler
	PlaceOrder      commands.PlaceOrderCommandHandler
	GetCurrentOrder queries.GetCurrentOrderQueryHandler
	GetPlacedOrders queries.GetPlacedOrdersQueryHandler
}

func NewServer(h Handlers) *Server {
	return &Server{
		addItemHandler:         h.AddItem,
		removeItemHandler:      h.RemoveItem,
		setOrderNumberHandler:  h.SetOrderNumber,
		resetOrderHandler:      h.ResetOrder,
		startNewOrderHandler:   h.StartNewOrder,
		placeOrderHandler:      h.PlaceOrder,
		getCurrentOrderHandler: h.GetCurrentOrder,
		getPlacedOrdersHandler: h.GetPlacedOrders,
		now:                    time.Now,
	}
}

// GetCurrentOrder handles GET /api/v1/order.
func (s *Server) GetCurrentOrder(ctx echo.Context) error {
	current, err := s.getCurrentOrderHandler.Handle(ctx.Request().Context(), queries.NewGetCurrentOrderQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve current order")
	}

	items := make([]OrderItem, len(current.Items))
	for i, item := range current.Items {
		items[i] = OrderItem{
			Position:    item.Position,
			Description: item.Description,
			Price:       item.Price,
		}
	}

	return ctx.JSON(http.StatusOK, Order{
		Number:           current.Number,
		Items:            items,
		ItemDescriptions: current.ItemDescriptions,
		Subtotal:         current.Subtotal,
		SalesTax:         current.SalesTax,
		Total:            current.Total,
		Receipt:          current.Receipt,
	})
}

// AddItem handles POST /api/v1/order/items.
func (s *Server) AddItem(ctx echo.Context) error {
	var body NewItem
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	price, err := kernel.ParseMoney(body.Price)
	if err != nil {
		return writeError(ctx, err, "Invalid item price")
	}

	cmd, err := commands.NewAddItemCommand(body.Name, price)
	if err != nil {
		return writeError(ctx, err, "Invalid item")
	}

	if err = s.addItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to add item")
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveItem handles DELETE /api/v1/order/items/:position.
func (s *Server) RemoveItem(ctx echo.Context, position int) error {
	cmd, err := commands.NewRemoveItemCommand(position)
	if err != nil {
		return writeError(ctx, err, "Invalid position")
	}

	if err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to remove item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetOrderNumber handles PUT /api/v1/order/number.
func (s *Server) SetOrderNumber(ctx echo.Context) error {
	var body OrderNumber
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSetOrderNumberCommand(body.Number)
	if err != nil {
		return writeError(ctx, err, "Invalid order number")
	}

	if err = s.setOrderNumberHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to set order number")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResetOrder handles POST /api/v1/order/reset.
func (s *Server) ResetOrder(ctx echo.Context) error {
	if err := s.resetOrderHandler.Handle(ctx.Request().Context(), commands.NewResetOrderCommand()); err != nil {
		return writeError(ctx, err, "Failed to reset order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartNewOrder handles POST /api/v1/order/new.
func (s *Server) StartNewOrder(ctx echo.Context) error {
	if err := s.startNewOrderHandler.Handle(ctx.Request().Context(), commands.NewStartNewOrderCommand()); err != nil {
		return writeError(ctx, err, "Failed to start new order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/order/place.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	id := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(id, s.now())
	if err != nil {
		return writeError(ctx, err, "Invalid place order request")
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, PlacedOrderRef{Id: id.Bytes()})
}

// GetPlacedOrders handles GET /api/v1/orders.
func (s *Server) GetPlacedOrders(ctx echo.Context) error {
	placed, err := s.getPlacedOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPlacedOrdersQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve placed orders")
	}

	response := make([]PlacedOrder, len(placed))
	for i, p := range placed {
		response[i] = PlacedOrder{
			Id:        p.ID.Bytes(),
			Number:    p.Number,
			ItemCount: p.ItemCount,
			Subtotal:  kernel.FormatMoney(p.Subtotal),
			SalesTax:  kernel.FormatMoney(p.SalesTax),
			Total:     kernel.FormatMoney(p.Total),
			PlacedAt:  p.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
