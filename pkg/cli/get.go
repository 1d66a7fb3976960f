package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/recipe-api/pkg/client"
	"github.com/mchmarny/recipe-api/pkg/serializer"
)

func getCmd() *cli.Command {
	return &cli.Command{
		Name:                  "get",
		EnableShellCompletion: true,
		Usage:                 "Fetch a single recipe by id",
		ArgsUsage:             "ID",
		Description: `Fetch a single recipe from a running server by its numeric id. A missing
id results in a not found error.`,
		Flags: []cli.Flag{
			serverFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			arg := cmd.Args().First()
			if arg == "" {
				return fmt.Errorf("recipe id argument is required")
			}
			id, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid recipe id %q: %w", arg, err)
			}

			c := client.New(cmd.String("server"))
			rec, err := c.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("get failed: %w", err)
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
