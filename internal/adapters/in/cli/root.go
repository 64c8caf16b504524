// Package cli is the command-line front end: one cobra subcommand per
// operation plus an interactive menu shell.
package cli

import (
	"context"
	"log/slog"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

// Handlers groups every use case the CLI can run.
type Handlers struct {
	Create   commands.CreateDeliveryCommandHandler
	Delete   commands.DeleteDeliveryCommandHandler
	Checkout commands.CheckoutDeliveryCommandHandler
	Edit     commands.EditDeliveryCommandHandler
	Find     queries.FindReceiptQueryHandler
	List     queries.ListDeliveriesQueryHandler
	Count    queries.CountDeliveriesQueryHandler
	Search   queries.SearchDeliveriesQueryHandler
	Export   queries.ExportDeliveriesQueryHandler
}

// StoreOptions selects the record store. The --store and --file flags
// override the configured values.
type StoreOptions struct {
	Driver string
	File   string
}

// BuildFunc wires handlers for the selected store. The returned close
// function releases the store and is called once the command finishes.
type BuildFunc func(ctx context.Context, opts StoreOptions) (*Handlers, func() error, error)

type app struct {
	opts   StoreOptions
	build  BuildFunc
	logger *slog.Logger
}

// NewRootCommand builds the "parcels" command tree. Without a subcommand it
// starts the interactive shell.
func NewRootCommand(defaults StoreOptions, build BuildFunc, logger *slog.Logger) *cobra.Command {
	a := &app{
		opts:   defaults,
		build:  build,
		logger: logger.With("component", "cli"),
	}

	root := &cobra.Command{
		Use:           "parcels",
		Short:         "Book, track and check out parcel deliveries",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          a.withHandlers(a.runShell),
	}

	root.PersistentFlags().StringVar(&a.opts.Driver, "store", defaults.Driver, "record store: csv, sqlite or postgres")
	root.PersistentFlags().StringVar(&a.opts.File, "file", defaults.File, "csv or sqlite store file (default DELIVERY_FILE or DELIVERY_SQLITE_PATH)")

	root.AddCommand(
		a.newShellCommand(),
		a.newCreateCommand(),
		a.newFindCommand(),
		a.newListCommand(),
		a.newCountCommand(),
		a.newSearchCommand(),
		a.newDeleteCommand(),
		a.newCheckoutCommand(),
		a.newEditCommand(),
		a.newExportCommand(),
	)

	return root
}

type runFunc func(cmd *cobra.Command, args []string, h *Handlers) error

// withHandlers builds the handlers for the current flags, runs fn and closes the store.
func (a *app) withHandlers(fn runFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		a.logger.Debug("running command", "command", cmd.Name(), "store", a.opts.Driver, "file", a.opts.File)

		h, closeStore, err := a.build(cmd.Context(), a.opts)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := closeStore(); closeErr != nil {
				a.logger.Warn("closing store failed", "error", closeErr)
			}
		}()

		return fn(cmd, args, h)
	}
}
