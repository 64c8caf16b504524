package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/kernel"

	"github.com/spf13/cobra"
)

const menu = `
..... Welcome To Delivery Service .....
Press 1 to deliver a parcel.
Press 2 to check a receipt.
Press 3 to edit a delivery.
Press 4 to cancel a delivery.
Press 5 to check out a delivery.
Press 6 to list all deliveries.
Press 7 to count deliveries.
Press 8 to search deliveries.
Press 9 to exit.`

// clearValue entered at an edit prompt empties an optional field.
const clearValue = "-"

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// ask prints label and returns the trimmed next line. End of input is io.EOF.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(p.out)
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// askUntil repeats the prompt until valid accepts the answer.
func (p *prompter) askUntil(label, hint string, valid func(string) bool) (string, error) {
	for {
		answer, err := p.ask(label)
		if err != nil {
			return "", err
		}
		if valid(answer) {
			return answer, nil
		}
		fmt.Fprintln(p.out, hint)
	}
}

func notBlank(s string) bool { return s != "" }

var weightHint = fmt.Sprintf("Weight must be a number greater than 0 and at most %d kg.", kernel.MaxWeightKilograms)

func isAcceptedWeight(s string) bool {
	_, err := kernel.ParseWeight(s)
	return err == nil
}

func isTrackingID(s string) bool {
	_, err := kernel.ParseTrackingID(s)
	return err == nil
}

func isEmailOrEmpty(s string) bool {
	return s == "" || kernel.IsValidEmail(s)
}

var cityHint = "Please choose one of: " + strings.Join(kernel.Cities(), ", ")

func (a *app) runShell(cmd *cobra.Command, _ []string, h *Handlers) error {
	p := &prompter{in: bufio.NewScanner(cmd.InOrStdin()), out: cmd.OutOrStdout()}

	for {
		fmt.Fprintln(p.out, menu)
		choice, err := p.ask("Enter: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		a.logger.Debug("menu choice", "choice", choice)

		var actionErr error
		switch choice {
		case "1":
			actionErr = a.shellCreate(cmd, p, h)
		case "2":
			actionErr = a.shellFind(cmd, p, h)
		case "3":
			actionErr = a.shellEdit(cmd, p, h)
		case "4":
			actionErr = a.shellDelete(cmd, p, h)
		case "5":
			actionErr = a.shellCheckout(cmd, p, h)
		case "6":
			actionErr = runList(cmd, h)
		case "7":
			actionErr = runCount(cmd, h)
		case "8":
			actionErr = a.shellSearch(cmd, p, h)
		case "9":
			fmt.Fprintln(p.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(p.out, "Please enter a number from 1 to 9.")
			continue
		}

		if errors.Is(actionErr, io.EOF) {
			return nil
		}
		if actionErr != nil {
			fmt.Fprintln(p.out, describe(actionErr))
		}
	}
}

const idHint = "An ID Number has five digits, e.g. 12345."

func (a *app) shellDelete(cmd *cobra.Command, p *prompter, h *Handlers) error {
	id, err := p.askUntil("Enter ID Number to cancel: ", idHint, isTrackingID)
	if err != nil {
		return err
	}
	return runDelete(cmd, h, id)
}

func (a *app) shellCreate(cmd *cobra.Command, p *prompter, h *Handlers) error {
	var (
		in  commands.CreateDeliveryInput
		err error
	)

	steps := []struct {
		dst   *string
		label string
		hint  string
		valid func(string) bool
	}{
		{&in.Name, "Enter Your Name: ", "Name cannot be empty.", notBlank},
		{&in.Phone1, "Enter Your Phone Number 1 (optional): ", "Phone must be 10 digits starting with 06, 08 or 09.", kernel.IsValidPhone},
		{&in.Phone2, "Enter Your Phone Number 2 (optional): ", "Phone must be 10 digits starting with 06, 08 or 09.", kernel.IsValidPhone},
		{&in.Email, "Enter Your Email (optional): ", "Email must look like name@example.com.", isEmailOrEmpty},
		{&in.Weight, "Enter Weight (kg): ", weightHint, isAcceptedWeight},
		{&in.From, "Enter the City You Deliver From: ", cityHint, kernel.IsValidCity},
		{&in.To, "Enter the City You Deliver To: ", cityHint + " (different from origin)", func(s string) bool {
			return kernel.IsValidCity(s) && s != in.From
		}},
	}

	for _, step := range steps {
		if *step.dst, err = p.askUntil(step.label, step.hint, step.valid); err != nil {
			return err
		}
	}

	c, err := commands.NewCreateDeliveryCommand(in)
	if err != nil {
		return err
	}
	d, err := h.Create.Handle(cmd.Context(), c)
	if err != nil {
		return err
	}
	printReceipt(p.out, "Receipt", d)
	return nil
}

func (a *app) askLookupKey(p *prompter) (name, id string, err error) {
	if name, err = p.askUntil("Enter Name: ", "Name cannot be empty.", notBlank); err != nil {
		return "", "", err
	}
	if id, err = p.askUntil("Enter ID Number: ", idHint, isTrackingID); err != nil {
		return "", "", err
	}
	return name, id, nil
}

func (a *app) shellFind(cmd *cobra.Command, p *prompter, h *Handlers) error {
	name, id, err := a.askLookupKey(p)
	if err != nil {
		return err
	}
	q, err := queries.NewFindReceiptQuery(name, id)
	if err != nil {
		return err
	}
	d, err := h.Find.Handle(cmd.Context(), q)
	if err != nil {
		return err
	}
	printReceipt(p.out, "Receipt Found", d)
	return nil
}

func (a *app) shellCheckout(cmd *cobra.Command, p *prompter, h *Handlers) error {
	name, id, err := a.askLookupKey(p)
	if err != nil {
		return err
	}
	return runCheckout(cmd, h, id, name)
}

func (a *app) shellSearch(cmd *cobra.Command, p *prompter, h *Handlers) error {
	term, err := p.askUntil("Enter name or ID to search: ", "Search term cannot be empty.", notBlank)
	if err != nil {
		return err
	}
	return runSearch(cmd, h, term)
}

// shellEdit shows the current values and asks for replacements. A blank
// answer keeps the value; "-" clears an optional phone or email.
func (a *app) shellEdit(cmd *cobra.Command, p *prompter, h *Handlers) error {
	name, id, err := a.askLookupKey(p)
	if err != nil {
		return err
	}
	q, err := queries.NewFindReceiptQuery(name, id)
	if err != nil {
		return err
	}
	current, err := h.Find.Handle(cmd.Context(), q)
	if err != nil {
		return err
	}

	in, err := askEdits(p, current)
	if err != nil {
		return err
	}

	c, err := commands.NewEditDeliveryCommand(id, name, in)
	if err != nil {
		return err
	}
	d, err := h.Edit.Handle(cmd.Context(), c)
	if err != nil {
		return err
	}
	printReceipt(p.out, "Updated Receipt", d)
	return nil
}

func askEdits(p *prompter, current *delivery.Delivery) (commands.EditDeliveryInput, error) {
	var in commands.EditDeliveryInput

	const phoneHint = "Phone must be 10 digits starting with 06, 08 or 09."
	steps := []struct {
		dst       **string
		label     string
		hint      string
		valid     func(string) bool
		clearable bool
	}{
		{&in.Phone1, fmt.Sprintf("Phone Number 1 [%s]: ", orDash(current.Phone1().String())),
			phoneHint, kernel.IsValidPhone, true},
		{&in.Phone2, fmt.Sprintf("Phone Number 2 [%s]: ", orDash(current.Phone2().String())),
			phoneHint, kernel.IsValidPhone, true},
		{&in.Email, fmt.Sprintf("Email [%s]: ", orDash(current.Email().String())),
			"Email must look like name@example.com.", kernel.IsValidEmail, true},
		{&in.Weight, fmt.Sprintf("Weight in kg [%s]: ", current.Weight()),
			weightHint, isAcceptedWeight, false},
		{&in.From, fmt.Sprintf("From [%s]: ", current.From()),
			cityHint, kernel.IsValidCity, false},
	}

	for _, step := range steps {
		answer, err := p.askUntil(step.label, step.hint, func(s string) bool {
			return s == "" || (step.clearable && s == clearValue) || step.valid(s)
		})
		if err != nil {
			return commands.EditDeliveryInput{}, err
		}

		switch {
		case answer == "":
		case step.clearable && answer == clearValue:
			empty := ""
			*step.dst = &empty
		default:
			*step.dst = &answer
		}
	}

	from := current.From().String()
	if in.From != nil {
		from = *in.From
	}
	to := current.To().String()

	answer, err := p.askUntil(fmt.Sprintf("To [%s]: ", to), cityHint+" (different from origin)", func(s string) bool {
		if s == "" {
			return to != from
		}
		return kernel.IsValidCity(s) && s != from
	})
	if err != nil {
		return commands.EditDeliveryInput{}, err
	}
	if answer != "" {
		in.To = &answer
	}

	return in, nil
}
