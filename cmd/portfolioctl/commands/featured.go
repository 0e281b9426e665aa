package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/site"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/site/view"
)

// FeaturedCommand prints the landing page content as the site renders it.
type FeaturedCommand struct{}

func (c *FeaturedCommand) Name() string        { return "featured" }
func (c *FeaturedCommand) Description() string { return "Show featured projects and testimonials" }
func (c *FeaturedCommand) Setup(fs *flag.FlagSet) {}

func (c *FeaturedCommand) Run(ctx *Context, args []string) error {
	rctx, cancel := ctx.Ctx()
	defer cancel()

	featured := site.NewLoader(ctx.Client).Load(rctx)

	out := NewOutputWriter(ctx.Output, ctx.Config.JSONOutput)
	if out.IsJSON() {
		return out.WriteJSON(featured)
	}

	fmt.Fprintln(ctx.Output, "Projects")
	if featured.Projects == nil {
		fmt.Fprintln(ctx.Output, "  (none)")
	}
	for _, p := range featured.Projects {
		fmt.Fprintf(ctx.Output, "  %s: %s\n", p.Title, Truncate(p.Description, 60))
		if len(p.Tags) > 0 {
			fmt.Fprintf(ctx.Output, "    [%s]\n", strings.Join(p.Tags, "] ["))
		}
		fmt.Fprintf(ctx.Output, "    %s  %s\n", linkText(p.Github), linkText(p.Demo))
	}

	fmt.Fprintln(ctx.Output, "Testimonials")
	if featured.Testimonials == nil {
		fmt.Fprintln(ctx.Output, "  (none)")
	}
	for i, slot := range featured.Testimonials {
		fmt.Fprintf(ctx.Output, "  card %d\n", i+1)
		for _, t := range slot.Cards {
			fmt.Fprintf(ctx.Output, "    %s (%s): %s\n", t.ClientName, t.Byline, Truncate(t.Text, 60))
		}
	}
	return nil
}

func linkText(l view.Link) string {
	if !l.NewTab {
		return l.Label
	}
	return l.Label + " <" + l.Href + ">"
}
