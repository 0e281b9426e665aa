package commands

import (
	"flag"
	"fmt"
)

type HealthCommand struct{}

func (c *HealthCommand) Name() string        { return "health" }
func (c *HealthCommand) Description() string { return "Check that the API is up" }
func (c *HealthCommand) Setup(fs *flag.FlagSet) {}

func (c *HealthCommand) Run(ctx *Context, args []string) error {
	rctx, cancel := ctx.Ctx()
	defer cancel()

	h, err := ctx.Client.Health(rctx)
	if err != nil {
		return err
	}

	out := NewOutputWriter(ctx.Output, ctx.Config.JSONOutput)
	if out.IsJSON() {
		return out.WriteJSON(h)
	}
	fmt.Fprintf(ctx.Output, "%s (db: %s) at %s\n", h.Message, h.DB, h.Timestamp)
	return nil
}
