package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/pkg/errs"
)

const receiptFooter = "*Do Not Lose Your ID Number*"

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printReceipt(w io.Writer, title string, d *delivery.Delivery) {
	fmt.Fprintf(w, "------- %s -------\n", title)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Date:\t%s\n", d.Date().Format(time.DateOnly))
	fmt.Fprintf(tw, "ID:\t%s\n", d.ID())
	fmt.Fprintf(tw, "Name:\t%s\n", d.Name())
	fmt.Fprintf(tw, "Phone 1:\t%s\n", orDash(d.Phone1().String()))
	fmt.Fprintf(tw, "Phone 2:\t%s\n", orDash(d.Phone2().String()))
	fmt.Fprintf(tw, "Email:\t%s\n", orDash(d.Email().String()))
	fmt.Fprintf(tw, "Weight:\t%s kg\n", d.Weight())
	fmt.Fprintf(tw, "From:\t%s\n", d.From())
	fmt.Fprintf(tw, "To:\t%s\n", d.To())
	fmt.Fprintf(tw, "Amount:\t%s THB\n", d.Amount())
	fmt.Fprintf(tw, "Status:\t%s\n", d.Status())
	_ = tw.Flush()

	fmt.Fprintln(w, receiptFooter)
	fmt.Fprintln(w, "-----------------------")
}

func printTable(w io.Writer, deliveries []*delivery.Delivery) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tID\tNAME\tPHONE 1\tPHONE 2\tEMAIL\tWEIGHT\tFROM\tTO\tAMOUNT\tSTATUS")
	for _, d := range deliveries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.Date().Format(time.DateOnly),
			d.ID(),
			d.Name(),
			orDash(d.Phone1().String()),
			orDash(d.Phone2().String()),
			orDash(d.Email().String()),
			d.Weight(),
			d.From(),
			d.To(),
			d.Amount(),
			d.Status(),
		)
	}
	_ = tw.Flush()
}

// commandError carries the user-facing message for a failed command while
// keeping the handler error reachable through errors.Is and errors.As.
type commandError struct {
	message string
	cause   error
}

func (e *commandError) Error() string { return e.message }

func (e *commandError) Unwrap() error { return e.cause }

func failure(err error) error {
	return &commandError{message: describe(err), cause: err}
}

// describe turns a handler error into a message for the user.
func describe(err error) string {
	var (
		notFound *errs.ObjectNotFoundError
		storage  *errs.StorageError
	)

	switch {
	case errors.As(err, &notFound):
		return fmt.Sprintf("No delivery found for %v.", notFound.ID)
	case errors.Is(err, errs.ErrObjectIsInTerminalState):
		return "This delivery has already been delivered."
	case errors.As(err, &storage):
		return fmt.Sprintf("The delivery records could not be used: %v", err)
	default:
		return err.Error()
	}
}
