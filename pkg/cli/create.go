package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/recipe-api/pkg/client"
	"github.com/mchmarny/recipe-api/pkg/recipe"
	"github.com/mchmarny/recipe-api/pkg/serializer"
)

func createCmd() *cli.Command {
	return &cli.Command{
		Name:                  "create",
		EnableShellCompletion: true,
		Usage:                 "Create a new recipe",
		Description: `Create a new recipe on a running server. The recipe can be given with the
label/source/url flags, or loaded from a JSON or YAML file with --file.
Flags override values loaded from the file.

The created record, including its server-assigned id, is printed on success.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "label",
				Aliases: []string{"l"},
				Usage:   "Recipe label (required unless provided via --file)",
			},
			&cli.StringFlag{
				Name:  "source",
				Usage: "Recipe source (required unless provided via --file)",
			},
			&cli.StringFlag{
				Name:  "url",
				Usage: "Recipe URL (optional)",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to a JSON or YAML file with the recipe to create",
			},
			serverFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			req := &recipe.CreateRequest{}
			if path := cmd.String("file"); path != "" {
				loaded, err := serializer.FromFile[recipe.CreateRequest](path)
				if err != nil {
					return fmt.Errorf("failed to load recipe from %s: %w", path, err)
				}
				req = loaded
			}
			if v := cmd.String("label"); v != "" {
				req.Label = v
			}
			if v := cmd.String("source"); v != "" {
				req.Source = v
			}
			if v := cmd.String("url"); v != "" {
				req.URL = v
			}

			if req.Label == "" || req.Source == "" {
				return fmt.Errorf("label and source are required (via flags or --file)")
			}

			c := client.New(cmd.String("server"))
			rec, err := c.Create(ctx, *req)
			if err != nil {
				return fmt.Errorf("create failed: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(rec)
		},
	}
}
