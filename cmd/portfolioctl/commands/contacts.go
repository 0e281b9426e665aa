package commands

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/client"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/site/view"
)

// ContactCommand submits the contact form.
type ContactCommand struct {
	form view.ContactForm
}

func (c *ContactCommand) Name() string        { return "contact" }
func (c *ContactCommand) Description() string { return "Send a message through the contact form" }

func (c *ContactCommand) Setup(fs *flag.FlagSet) {
	fs.StringVar(&c.form.FullName, "name", "", "Full name (required)")
	fs.StringVar(&c.form.Email, "email", "", "Email address (required)")
	fs.StringVar(&c.form.Subject, "subject", "", "Subject")
	fs.StringVar(&c.form.Message, "message", "", "Message (required)")
}

func (c *ContactCommand) Run(ctx *Context, args []string) error {
	if n := view.ValidateContactForm(c.form); n != nil {
		ctx.Notifier.Show(*n)
		return showNotice(ctx)
	}

	rctx, cancel := ctx.Ctx()
	defer cancel()

	res, err := ctx.Client.SubmitContact(rctx, c.form.FullName, c.form.Email, c.form.Subject, c.form.Message)

	var apiErr *client.APIError
	switch {
	case err == nil:
		ctx.Notifier.Show(view.NoticeForSubmit(view.SubmitResult{Success: true, Message: res.Message}, nil))
	case errors.As(err, &apiErr):
		ctx.Notifier.Show(view.NoticeForSubmit(view.SubmitResult{Message: apiErr.Message}, nil))
	default:
		fmt.Fprintf(ctx.ErrOutput, "submit contact: %v\n", err)
		ctx.Notifier.Show(view.NoticeForSubmit(view.SubmitResult{}, err))
	}
	return showNotice(ctx)
}

// showNotice prints the current notice and returns an error for
// non-success notices so the exit code reflects the outcome.
func showNotice(ctx *Context) error {
	n, ok := ctx.Notifier.Current()
	if !ok {
		return nil
	}
	fmt.Fprintf(ctx.Output, "[%s] %s\n", n.Kind, n.Message)
	if n.Kind == view.NoticeError {
		return errors.New(n.Message)
	}
	return nil
}

// ContactsCommand lists contact messages.
type ContactsCommand struct{}

func (c *ContactsCommand) Name() string        { return "contacts" }
func (c *ContactsCommand) Description() string { return "List contact messages, newest first" }
func (c *ContactsCommand) Setup(fs *flag.FlagSet) {}

func (c *ContactsCommand) Run(ctx *Context, args []string) error {
	rctx, cancel := ctx.Ctx()
	defer cancel()

	items, err := ctx.Client.Contacts(rctx)
	if err != nil {
		return err
	}

	out := NewOutputWriter(ctx.Output, ctx.Config.JSONOutput)
	if out.IsJSON() {
		return out.WriteJSON(items)
	}

	rows := make([][]string, 0, len(items))
	for _, m := range items {
		rows = append(rows, []string{
			strconv.FormatInt(m.ID, 10),
			string(m.Status),
			m.FullName,
			m.Email,
			Truncate(m.Subject, 24),
			m.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	out.WriteTable([]string{"id", "status", "name", "email", "subject", "created"}, rows)
	return nil
}

// StatusCommand updates the status of a contact message.
type StatusCommand struct{}

func (c *StatusCommand) Name() string        { return "status" }
func (c *StatusCommand) Description() string { return "Set a contact's status: status <id> <new|read|replied>" }
func (c *StatusCommand) Setup(fs *flag.FlagSet) {}

func (c *StatusCommand) Run(ctx *Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: portfolioctl status <id> <new|read|replied>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid contact id %q", args[0])
	}

	status, err := domain.ParseContactStatus(args[1])
	if err != nil {
		return fmt.Errorf("invalid status %q: want new, read or replied", args[1])
	}

	rctx, cancel := ctx.Ctx()
	defer cancel()

	if err := ctx.Client.UpdateContactStatus(rctx, id, status); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Output, "contact %d marked %s\n", id, status)
	return nil
}
