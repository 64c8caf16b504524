package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parcels/internal/adapters/in/cli"
	"parcels/internal/adapters/out/csvstore"
	"parcels/internal/adapters/out/gormstore"
	"parcels/internal/adapters/out/xlsxexport"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"

	"github.com/jinzhu/now"
)

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	store      ports.DeliveryStore
	closeStore func() error
	exporter   ports.DeliveryExporter
	pricing    services.Pricing
	ids        commands.IDGenerator
	clock      commands.Clock
}

// NewCompositionRoot opens and initializes the configured store.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err = store.Initialize(ctx); err != nil {
		_ = closeStore()
		return nil, err
	}

	return &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		closeStore: closeStore,
		exporter:   xlsxexport.NewExporter(logger),
		pricing:    cfg.Pricing(),
		ids:        commands.IDGeneratorFunc(kernel.NewRandomTrackingID),
		clock:      commands.ClockFunc(func() time.Time { return now.BeginningOfDay() }),
	}, nil
}

func openStore(cfg Config, logger *slog.Logger) (ports.DeliveryStore, func() error, error) {
	switch cfg.Store {
	case StoreCSV:
		return csvstore.NewStore(cfg.DeliveryFile, logger), func() error { return nil }, nil
	case StoreSQLite:
		db, err := gormstore.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return gormstore.NewGormDeliveryStore(db, logger), func() error { return gormstore.Close(db) }, nil
	case StorePostgres:
		db, err := gormstore.OpenPostgres(cfg.Postgres().DSN())
		if err != nil {
			return nil, nil, err
		}
		return gormstore.NewGormDeliveryStore(db, logger), func() error { return gormstore.Close(db) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

func (c *CompositionRoot) Close() error {
	return c.closeStore()
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.store, c.pricing, c.ids, c.clock, c.cfg.UniqueIDs)
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	return commands.NewDeleteDeliveryCommandHandler(c.store)
}

func (c *CompositionRoot) CreateCheckoutDeliveryCommandHandler() commands.CheckoutDeliveryCommandHandler {
	return commands.NewCheckoutDeliveryCommandHandler(c.store)
}

func (c *CompositionRoot) CreateEditDeliveryCommandHandler() commands.EditDeliveryCommandHandler {
	return commands.NewEditDeliveryCommandHandler(c.store, c.pricing)
}

func (c *CompositionRoot) CreateFindReceiptQueryHandler() queries.FindReceiptQueryHandler {
	return queries.NewFindReceiptQueryHandler(c.store)
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.store)
}

func (c *CompositionRoot) CreateCountDeliveriesQueryHandler() queries.CountDeliveriesQueryHandler {
	return queries.NewCountDeliveriesQueryHandler(c.store)
}

func (c *CompositionRoot) CreateSearchDeliveriesQueryHandler() queries.SearchDeliveriesQueryHandler {
	return queries.NewSearchDeliveriesQueryHandler(c.store)
}

func (c *CompositionRoot) CreateExportDeliveriesQueryHandler() queries.ExportDeliveriesQueryHandler {
	return queries.NewExportDeliveriesQueryHandler(c.store, c.exporter)
}

// Handlers collects every handler for the CLI.
func (c *CompositionRoot) Handlers() *cli.Handlers {
	return &cli.Handlers{
		Create:   c.CreateCreateDeliveryCommandHandler(),
		Delete:   c.CreateDeleteDeliveryCommandHandler(),
		Checkout: c.CreateCheckoutDeliveryCommandHandler(),
		Edit:     c.CreateEditDeliveryCommandHandler(),
		Find:     c.CreateFindReceiptQueryHandler(),
		List:     c.CreateListDeliveriesQueryHandler(),
		Count:    c.CreateCountDeliveriesQueryHandler(),
		Search:   c.CreateSearchDeliveriesQueryHandler(),
		Export:   c.CreateExportDeliveriesQueryHandler(),
	}
}

// NewBuildFunc returns the CLI hook that applies the store flags to cfg and
// wires a fresh composition root for each command.
func NewBuildFunc(cfg Config, logger *slog.Logger) cli.BuildFunc {
	return func(ctx context.Context, opts cli.StoreOptions) (*cli.Handlers, func() error, error) {
		root, err := NewCompositionRoot(ctx, cfg.WithOverrides(opts.Driver, opts.File), logger)
		if err != nil {
			return nil, nil, err
		}
		return root.Handlers(), root.Close, nil
	}
}
