package cmd

import (
	"log/slog"

	"repairshop/internal/adapters/out/postgres"
	"repairshop/internal/adapters/out/postgres/codegen"
	"repairshop/internal/adapters/out/postgres/outboxrepo"
	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/application/usecases/queries"
	"repairshop/internal/core/domain/model/sector"
	"repairshop/internal/core/domain/model/status"
	"repairshop/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    *sector.Catalog
	vocabulary *status.Vocabulary
	deriver    sector.FlowDeriver
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, notifier ports.Notifier, logger *slog.Logger) CompositionRoot {
	catalog := sector.DefaultCatalog()
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalog,
		vocabulary: status.NewVocabulary(),
		deriver:    sector.NewFlowDeriver(catalog),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) Catalog() *sector.Catalog {
	return c.catalog
}

func (c *CompositionRoot) Vocabulary() *status.Vocabulary {
	return c.vocabulary
}

func (c *CompositionRoot) CreateOutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(c.gormDB)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		codegen.NewGormOrderCodeGenerator(c.gormDB, c.logger),
		c.deriver,
		c.vocabulary,
	)
}

func (c *CompositionRoot) CreateMoveOrderToSectorCommandHandler() commands.MoveOrderToSectorCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMoveOrderToSectorCommandHandler(
		f,
		c.catalog,
		c.vocabulary,
		c.notifier,
		c.CreateOutboxRepository(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(
		f,
		c.vocabulary,
		c.notifier,
		c.CreateOutboxRepository(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateStaffCommandHandler() commands.CreateStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersBoardQueryHandler() queries.GetOrdersBoardQueryHandler {
	return queries.NewGetOrdersBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSectorStatisticsQueryHandler() queries.GetSectorStatisticsQueryHandler {
	return queries.NewGetSectorStatisticsQueryHandler(c.gormDB, c.catalog)
}

func (c *CompositionRoot) CreateGetStatusColumnsQueryHandler() queries.GetStatusColumnsQueryHandler {
	return queries.NewGetStatusColumnsQueryHandler(c.vocabulary)
}

func (c *CompositionRoot) CreateGetAdjacentSectorsQueryHandler() queries.GetAdjacentSectorsQueryHandler {
	return queries.NewGetAdjacentSectorsQueryHandler(c.gormDB, c.catalog)
}

func (c *CompositionRoot) CreateGetAllStaffQueryHandler() queries.GetAllStaffQueryHandler {
	return queries.NewGetAllStaffQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}
