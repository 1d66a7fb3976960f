package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/recipe-api/pkg/logging"
)

const (
	name           = "recipes"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   "yaml",
		Usage:   "Output format (json, yaml, table)",
	}

	serverFlag = &cli.StringFlag{
		Name:    "server",
		Aliases: []string{"s"},
		Value:   "http://localhost:8080",
		Usage:   "Base URL of a running recipe API server",
		Sources: cli.EnvVars("RECIPES_SERVER"),
	}
)

// Run executes the CLI with the given arguments (including the program name).
func Run(ctx context.Context, args []string) error {
	logging.SetDefaultStructuredLogger(name, version)

	cmd := &cli.Command{
		Name:    name,
		Usage:   "Recipe API command line interface",
		Version: version,
		Description: fmt.Sprintf(`recipes - Recipe API CLI

Version: %s
Commit:  %s
Built:   %s

Run the recipe API server, or search, fetch, and create recipes against a
running instance.`, version, commit, date),
		Commands: []*cli.Command{
			serveCmd(),
			searchCmd(),
			getCmd(),
			createCmd(),
		},
	}

	return cmd.Run(ctx, args)
}
