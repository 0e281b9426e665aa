package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/cmd/portfolioctl/commands"
)

func main() {
	if len(os.Args) < 2 {
		commands.DefaultRegistry.PrintHelp(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "--help", "-h", "help":
		commands.DefaultRegistry.PrintHelp(os.Stdout)
		os.Exit(0)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmdName string, args []string) error {
	cmd, ok := commands.DefaultRegistry.Get(cmdName)
	if !ok {
		return fmt.Errorf("unknown command: %s\nRun 'portfolioctl --help' for usage", cmdName)
	}

	fs := flag.NewFlagSet(cmdName, flag.ContinueOnError)

	var config commands.Config
	fs.StringVar(&config.APIURL, "api", envOr("PORTFOLIO_API_URL", "http://localhost:3000/api"), "API root URL")
	fs.StringVar(&config.APIKey, "key", os.Getenv("ADMIN_API_KEY"), "Admin API key")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output in JSON format")
	fs.DurationVar(&config.Timeout, "timeout", 30*time.Second, "Per-request timeout")

	cmd.Setup(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "portfolioctl %s - %s\n\n", cmd.Name(), cmd.Description())
		fmt.Fprintf(os.Stderr, "Usage: portfolioctl %s [flags] [arguments]\n\n", cmd.Name())
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	return cmd.Run(commands.NewContext(&config), fs.Args())
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
