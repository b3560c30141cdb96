package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPlacedOrderRepository struct{ mock.Mock }

func (m *MockPlacedOrderRepository) Add(ctx context.Context, placed *order.PlacedOrder) error {
	args := m.Called(ctx, placed)
	return args.Error(0)
}
func (m *MockPlacedOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.PlacedOrder, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPlacedOrderRepository) List(_ context.Context) ([]*order.PlacedOrder, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPlacedOrderUoW struct{ mock.Mock }

func (m *MockPlacedOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlacedOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlacedOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlacedOrderUoW) PlacedOrderRepository() ports.PlacedOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.PlacedOrderRepository)
}

type MockPlacedOrderUoWFactory struct{ mock.Mock }

func (m *MockPlacedOrderUoWFactory) Create() commands.PlacedOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PlacedOrderUoW)
}

func newPlaceOrderCommand(t *testing.T) commands.PlaceOrderCommand {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	return cmd
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newPlaceOrderCommand(t)

	desk := services.NewCurrentOrder()
	addItem(t, desk, "Deluxe", "10.00")
	addItem(t, desk, "Hawaiian", "5.50")
	desk.Get().SetNumber(41)
	previous := desk.Get()

	var stored *order.PlacedOrder
	repo := new(MockPlacedOrderRepository)
	uow := new(MockPlacedOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PlacedOrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.PlacedOrder")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*order.PlacedOrder) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacedOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(desk, factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)

	require.NotNil(t, stored)
	assert.True(t, cmd.PlacedOrderID().IsEqual(stored.ID()))
	assert.Equal(t, 41, stored.Number())
	assert.Len(t, stored.Lines(), 2)
	assert.Equal(t, "16.53", stored.Totals().Formatted().Total)

	current := desk.Get()
	assert.NotSame(t, previous, current)
	assert.True(t, current.IsEmpty())
	assert.Equal(t, 42, current.Number())
	formatted, cached := previous.FormattedTotals()
	require.True(t, cached)
	assert.Equal(t, "16.53", formatted.Total)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockPlacedOrderUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(services.NewCurrentOrder(), factory)

	err := h.Handle(ctx, commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_EmptyOrder(t *testing.T) {
	ctx := t.Context()
	desk := services.NewCurrentOrder()
	previous := desk.Get()
	factory := new(MockPlacedOrderUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(desk, factory)

	err := h.Handle(ctx, newPlaceOrderCommand(t))

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, order.ErrOrderIsEmpty)
	assert.Same(t, previous, desk.Get())
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	desk := services.NewCurrentOrder()
	addItem(t, desk, "Deluxe", "10.00")
	previous := desk.Get()

	uow := new(MockPlacedOrderUoW)
	factory := new(MockPlacedOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(desk, factory)
	err := h.Handle(ctx, newPlaceOrderCommand(t))
	require.Error(t, err)
	assert.Same(t, previous, desk.Get())
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	desk := services.NewCurrentOrder()
	addItem(t, desk, "Deluxe", "10.00")
	previous := desk.Get()

	repo := new(MockPlacedOrderRepository)
	uow := new(MockPlacedOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PlacedOrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.PlacedOrder")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacedOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(desk, factory)
	err := h.Handle(ctx, newPlaceOrderCommand(t))
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	assert.Same(t, previous, desk.Get())
	assert.Equal(t, 1, desk.Get().Len())
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	desk := services.NewCurrentOrder()
	addItem(t, desk, "Deluxe", "10.00")
	previous := desk.Get()

	repo := new(MockPlacedOrderRepository)
	uow := new(MockPlacedOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PlacedOrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.PlacedOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacedOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(desk, factory)
	err := h.Handle(ctx, newPlaceOrderCommand(t))
	require.Error(t, err)
	uow.AssertExpectations(t)
	assert.Same(t, previous, desk.Get())
}
