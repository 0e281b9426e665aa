// Package commands provides the subcommands of portfolioctl.
package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/client"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/site/view"
)

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name (e.g., "featured", "contacts").
	Name() string
	// Description returns a short description for help text.
	Description() string
	// Setup configures command-specific flags.
	Setup(fs *flag.FlagSet)
	// Run executes the command with the given context and arguments.
	Run(ctx *Context, args []string) error
}

// Config holds global CLI configuration.
type Config struct {
	// APIURL is the API root, e.g. http://localhost:3000/api.
	APIURL string
	// APIKey is sent to administrative endpoints when set.
	APIKey string
	// JSONOutput indicates whether to output in JSON format.
	JSONOutput bool
	// Timeout bounds each API call.
	Timeout time.Duration
}

// Context provides the execution context for commands.
type Context struct {
	Config    *Config
	Client    *client.Client
	Notifier  *view.Notifier
	Output    io.Writer
	ErrOutput io.Writer
}

func NewContext(config *Config) *Context {
	return &Context{
		Config:    config,
		Client:    client.New(config.APIURL, client.WithAPIKey(config.APIKey)),
		Notifier:  view.NewNotifier(nil),
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
	}
}

// Ctx returns a context bounded by the configured timeout.
func (c *Context) Ctx() (context.Context, context.CancelFunc) {
	timeout := c.Config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

// Registry holds all registered commands.
type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// PrintHelp prints usage for all registered commands.
func (r *Registry) PrintHelp(w io.Writer) {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "portfolioctl - manage the portfolio site through its API")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: portfolioctl <command> [flags] [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-14s %s\n", name, r.commands[name].Description())
	}
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.Register(&HealthCommand{})
	DefaultRegistry.Register(&FeaturedCommand{})
	DefaultRegistry.Register(&ContactCommand{})
	DefaultRegistry.Register(&ContactsCommand{})
	DefaultRegistry.Register(&StatusCommand{})
	DefaultRegistry.Register(&AddProjectCommand{})
	DefaultRegistry.Register(&AddTestimonialCommand{})
}
