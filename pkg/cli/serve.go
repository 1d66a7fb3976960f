package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/recipe-api/pkg/api"
	"github.com/mchmarny/recipe-api/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the recipe API server",
		Description: `Run the recipe API server until interrupted. The store is seeded with the
embedded recipe set on startup; created records live only for the life of
the process.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (overrides the PORT environment variable)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.NewConfig()
			if port := int(cmd.Int("port")); port > 0 {
				cfg.Port = port
			}
			return api.ServeWithConfig(cfg)
		},
	}
}
