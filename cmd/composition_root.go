package cmd

import (
	"pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	desk       *services.CurrentOrder
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		desk:       services.NewCurrentOrder(),
	}
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.desk)
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(c.desk)
}

func (c *CompositionRoot) CreateSetOrderNumberCommandHandler() commands.SetOrderNumberCommandHandler {
	return commands.NewSetOrderNumberCommandHandler(c.desk)
}

func (c *CompositionRoot) CreateResetOrderCommandHandler() commands.ResetOrderCommandHandler {
	return commands.NewResetOrderCommandHandler(c.desk)
}

func (c *CompositionRoot) CreateStartNewOrderCommandHandler() commands.StartNewOrderCommandHandler {
	return commands.NewStartNewOrderCommandHandler(c.desk)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacedOrderUoWFactory = FuncPlacedOrderUoWFactory(func() commands.PlacedOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(c.desk, f)
}

func (c *CompositionRoot) CreateRelayPlacedOrdersCommandHandler(
	publisher ports.OrderEventPublisher,
) commands.RelayPlacedOrdersCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayPlacedOrdersCommandHandler(f, publisher)
}

func (c *CompositionRoot) CreateGetCurrentOrderQueryHandler() queries.GetCurrentOrderQueryHandler {
	return queries.NewGetCurrentOrderQueryHandler(c.desk)
}

func (c *CompositionRoot) CreateGetPlacedOrdersQueryHandler() queries.GetPlacedOrdersQueryHandler {
	return queries.NewGetPlacedOrdersQueryHandler(c.gormDB)
}

type FuncPlacedOrderUoWFactory func() commands.PlacedOrderUoW

func (f FuncPlacedOrderUoWFactory) Create() commands.PlacedOrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
