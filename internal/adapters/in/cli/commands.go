package cli

import (
	"errors"
	"fmt"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/pkg/errs"

	"github.com/spf13/cobra"
)

func (a *app) newShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE:  a.withHandlers(a.runShell),
	}
}

func (a *app) newCreateCommand() *cobra.Command {
	var in commands.CreateDeliveryInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book a new parcel and print its receipt",
		Args:  cobra.NoArgs,
		RunE: a.withHandlers(func(cmd *cobra.Command, _ []string, h *Handlers) error {
			c, err := commands.NewCreateDeliveryCommand(in)
			if err != nil {
				return err
			}
			d, err := h.Create.Handle(cmd.Context(), c)
			if err != nil {
				return failure(err)
			}
			printReceipt(cmd.OutOrStdout(), "Receipt", d)
			return nil
		}),
	}

	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "sender name")
	f.StringVar(&in.Phone1, "phone1", "", "first phone number (optional)")
	f.StringVar(&in.Phone2, "phone2", "", "second phone number (optional)")
	f.StringVar(&in.Email, "email", "", "e-mail address (optional)")
	f.StringVar(&in.Weight, "weight", "", "weight in kilograms")
	f.StringVar(&in.From, "from", "", "origin city")
	f.StringVar(&in.To, "to", "", "destination city")
	for _, name := range []string{"name", "weight", "from", "to"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (a *app) newFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find <name> <id>",
		Short: "Print the receipt of a parcel",
		Args:  cobra.ExactArgs(2),
		RunE: a.withHandlers(func(cmd *cobra.Command, args []string, h *Handlers) error {
			q, err := queries.NewFindReceiptQuery(args[0], args[1])
			if err != nil {
				return err
			}
			d, err := h.Find.Handle(cmd.Context(), q)
			if err != nil {
				return failure(err)
			}
			printReceipt(cmd.OutOrStdout(), "Receipt Found", d)
			return nil
		}),
	}
}

func (a *app) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every delivery",
		Args:  cobra.NoArgs,
		RunE: a.withHandlers(func(cmd *cobra.Command, _ []string, h *Handlers) error {
			return runList(cmd, h)
		}),
	}
}

func (a *app) newCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of deliveries",
		Args:  cobra.NoArgs,
		RunE: a.withHandlers(func(cmd *cobra.Command, _ []string, h *Handlers) error {
			return runCount(cmd, h)
		}),
	}
}

func (a *app) newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Find deliveries whose id or name contains term",
		Args:  cobra.ExactArgs(1),
		RunE: a.withHandlers(func(cmd *cobra.Command, args []string, h *Handlers) error {
			return runSearch(cmd, h, args[0])
		}),
	}
}

func (a *app) newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"cancel"},
		Short:   "Cancel every delivery with the given tracking id",
		Args:    cobra.ExactArgs(1),
		RunE: a.withHandlers(func(cmd *cobra.Command, args []string, h *Handlers) error {
			return runDelete(cmd, h, args[0])
		}),
	}
}

func (a *app) newCheckoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <id> <name>",
		Short: "Mark a parcel as delivered",
		Args:  cobra.ExactArgs(2),
		RunE: a.withHandlers(func(cmd *cobra.Command, args []string, h *Handlers) error {
			return runCheckout(cmd, h, args[0], args[1])
		}),
	}
}

func (a *app) newEditCommand() *cobra.Command {
	fields := []string{"phone1", "phone2", "email", "weight", "from", "to"}
	values := make(map[string]*string, len(fields))

	cmd := &cobra.Command{
		Use:   "edit <id> <name>",
		Short: "Change contact details, weight or route of a parcel",
		Long:  "Only the flags given are changed. Pass an empty value (--phone2 \"\") to clear an optional field.",
		Args:  cobra.ExactArgs(2),
		RunE: a.withHandlers(func(cmd *cobra.Command, args []string, h *Handlers) error {
			changed := func(name string) *string {
				if cmd.Flags().Changed(name) {
					return values[name]
				}
				return nil
			}

			c, err := commands.NewEditDeliveryCommand(args[0], args[1], commands.EditDeliveryInput{
				Phone1: changed("phone1"),
				Phone2: changed("phone2"),
				Email:  changed("email"),
				Weight: changed("weight"),
				From:   changed("from"),
				To:     changed("to"),
			})
			if err != nil {
				return err
			}
			d, err := h.Edit.Handle(cmd.Context(), c)
			if err != nil {
				return failure(err)
			}
			printReceipt(cmd.OutOrStdout(), "Updated Receipt", d)
			return nil
		}),
	}

	for _, name := range fields {
		values[name] = cmd.Flags().String(name, "", "new "+name)
	}

	return cmd
}

func (a *app) newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path.xlsx>",
		Short: "Write every delivery to an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE: a.withHandlers(func(cmd *cobra.Command, args []string, h *Handlers) error {
			q, err := queries.NewExportDeliveriesQuery(args[0])
			if err != nil {
				return err
			}
			n, err := h.Export.Handle(cmd.Context(), q)
			if err != nil {
				return failure(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d deliveries to %s\n", n, q.Path())
			return nil
		}),
	}
}

// The run helpers below are shared by the subcommands and the shell.

func runList(cmd *cobra.Command, h *Handlers) error {
	all, err := h.List.Handle(cmd.Context(), queries.NewListDeliveriesQuery())
	if errors.Is(err, queries.ErrNoDeliveries) {
		fmt.Fprintln(cmd.OutOrStdout(), "No deliveries yet.")
		return nil
	}
	if err != nil {
		return failure(err)
	}
	printTable(cmd.OutOrStdout(), all)
	return nil
}

func runCount(cmd *cobra.Command, h *Handlers) error {
	n, err := h.Count.Handle(cmd.Context(), queries.NewCountDeliveriesQuery())
	if err != nil {
		return failure(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Total deliveries: %d\n", n)
	return nil
}

func runSearch(cmd *cobra.Command, h *Handlers, term string) error {
	q, err := queries.NewSearchDeliveriesQuery(term)
	if err != nil {
		return err
	}
	found, err := h.Search.Handle(cmd.Context(), q)
	if err != nil {
		return failure(err)
	}
	if len(found) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No deliveries match %q.\n", q.Term())
		return nil
	}
	printTable(cmd.OutOrStdout(), found)
	return nil
}

func runDelete(cmd *cobra.Command, h *Handlers, id string) error {
	c, err := commands.NewDeleteDeliveryCommand(id)
	if err != nil {
		return err
	}
	n, err := h.Delete.Handle(cmd.Context(), c)
	if err != nil {
		return failure(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cancelled %d delivery record(s) with ID %s.\n", n, c.ID())
	return nil
}

func runCheckout(cmd *cobra.Command, h *Handlers, id, name string) error {
	c, err := commands.NewCheckoutDeliveryCommand(id, name)
	if err != nil {
		return err
	}
	d, err := h.Checkout.Handle(cmd.Context(), c)
	if errors.Is(err, errs.ErrObjectIsInTerminalState) {
		fmt.Fprintf(cmd.OutOrStdout(), "Delivery %s for %s was already delivered.\n", d.ID(), d.Name())
		return nil
	}
	if err != nil {
		return failure(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Delivery %s for %s checked out. Status: %s\n", d.ID(), d.Name(), d.Status())
	return nil
}
