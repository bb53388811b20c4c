package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/atluixx/lynkt/cmd/app/commands"
	"github.com/atluixx/lynkt/internal/app"
	"github.com/atluixx/lynkt/internal/config"
)

func getCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP API and metrics servers",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, config.Load(), version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run database migrations",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "down",
					Value: false,
					Usage: "Roll back every applied migration instead of applying pending ones",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				if cmd.Bool("down") {
					return commands.RollbackMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
				}
				return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
			},
		},
		{
			Name:  "check-config",
			Usage: "Validate the environment configuration without starting the server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCheckConfig(config.Load(), cmd.Root().Writer)
			},
		},
	}
}
