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

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "search",
		EnableShellCompletion: true,
		Usage:                 "Search recipes by label keyword",
		Description: `Search recipes on a running server by label keyword. Matching is a
case-insensitive substring test against the recipe label; results come back
in catalog order. Without a keyword the first records in catalog order are
returned.

Results can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "keyword",
				Aliases: []string{"k"},
				Usage:   "Keyword to match against recipe labels (min 3 characters)",
			},
			&cli.IntFlag{
				Name:  "max-results",
				Value: recipe.DefaultMaxResults,
				Usage: "Maximum number of results to return",
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

			c := client.New(cmd.String("server"))
			results, err := c.Search(ctx, cmd.String("keyword"), int(cmd.Int("max-results")))
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(recipe.SearchResults{Results: results})
		},
	}
}
