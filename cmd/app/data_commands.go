package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/gamestats/cmd/app/commands"
	"github.com/allisson/gamestats/internal/app"
	"github.com/allisson/gamestats/internal/config"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getDataCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-user",
			Usage: "Provision a user in the credential store",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Unique login name",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password (omit to read it from stdin)",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Value:   "PLAYER",
					Usage:   "Role: 'ADMIN' or 'PLAYER'",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateUser(
					ctx,
					userUseCase,
					container.Logger(),
					cmd.String("username"),
					cmd.String("password"),
					cmd.String("role"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "seed-data",
			Usage: "Load servers, players and users from a JSON data file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "file",
					Aliases: []string{"i"},
					Usage:   "Data file path (defaults to DATA_INIT_FILE)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				path := cmd.String("file")
				if path == "" {
					path = cfg.DataInitFile
				}

				seedUseCase, err := container.SeedUseCase()
				if err != nil {
					return err
				}

				return commands.RunSeedData(
					ctx,
					seedUseCase,
					container.Logger(),
					path,
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
