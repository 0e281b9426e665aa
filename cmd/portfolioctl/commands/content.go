package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/client"
)

// optional returns nil for an empty flag value.
func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

type AddProjectCommand struct {
	in    client.ProjectInput
	techs string
	image string
	repo  string
	demo  string
}

func (c *AddProjectCommand) Name() string        { return "add-project" }
func (c *AddProjectCommand) Description() string { return "Add a project" }

func (c *AddProjectCommand) Setup(fs *flag.FlagSet) {
	fs.StringVar(&c.in.Title, "title", "", "Project title")
	fs.StringVar(&c.in.Description, "description", "", "Project description")
	fs.StringVar(&c.image, "image", "", "Image URL")
	fs.StringVar(&c.repo, "github", "", "GitHub URL")
	fs.StringVar(&c.demo, "demo", "", "Live demo URL")
	fs.StringVar(&c.techs, "tech", "", "Comma-separated technologies, in display order")
	fs.BoolVar(&c.in.Featured, "featured", false, "Feature on the landing page")
}

func (c *AddProjectCommand) Run(ctx *Context, args []string) error {
	if strings.TrimSpace(c.in.Title) == "" {
		return fmt.Errorf("-title is required")
	}

	c.in.ImageURL = optional(c.image)
	c.in.GithubURL = optional(c.repo)
	c.in.LiveDemoURL = optional(c.demo)
	c.in.Technologies = splitList(c.techs)

	rctx, cancel := ctx.Ctx()
	defer cancel()

	id, err := ctx.Client.CreateProject(rctx, c.in)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Output, "project %d added\n", id)
	return nil
}

type AddTestimonialCommand struct {
	in       client.TestimonialInput
	position string
	company  string
	image    string
	rating   float64
}

func (c *AddTestimonialCommand) Name() string        { return "add-testimonial" }
func (c *AddTestimonialCommand) Description() string { return "Add a testimonial" }

func (c *AddTestimonialCommand) Setup(fs *flag.FlagSet) {
	fs.StringVar(&c.in.ClientName, "name", "", "Client name")
	fs.StringVar(&c.position, "position", "", "Client position")
	fs.StringVar(&c.company, "company", "", "Client company")
	fs.StringVar(&c.in.TestimonialText, "text", "", "Testimonial text")
	fs.StringVar(&c.image, "image", "", "Client image URL")
	fs.Float64Var(&c.rating, "rating", 0, "Rating; 0 leaves it unset")
	fs.BoolVar(&c.in.Featured, "featured", false, "Feature on the landing page")
}

func (c *AddTestimonialCommand) Run(ctx *Context, args []string) error {
	if strings.TrimSpace(c.in.ClientName) == "" || strings.TrimSpace(c.in.TestimonialText) == "" {
		return fmt.Errorf("-name and -text are required")
	}

	c.in.ClientPosition = optional(c.position)
	c.in.ClientCompany = optional(c.company)
	c.in.ClientImageURL = optional(c.image)
	if c.rating != 0 {
		r := c.rating
		c.in.Rating = &r
	}

	rctx, cancel := ctx.Ctx()
	defer cancel()

	id, err := ctx.Client.CreateTestimonial(rctx, c.in)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Output, "testimonial %d added\n", id)
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
