// Command fogcontroller runs the fog controller REST server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mugiliam/fogcontroller/internal/config"
	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/dbmanager"
	"github.com/mugiliam/fogcontroller/internal/logging"
	"github.com/mugiliam/fogcontroller/internal/server"
	"github.com/mugiliam/fogcontroller/pkg/api"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:            "fogcontroller",
		Usage:           "fog fleet controller",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the configuration file",
				Sources: cli.EnvVars("FOG_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			startCommand(),
			migrateCommand(),
			configCommand(),
			versionCommand(),
		},
		ExitErrHandler: func(ctx context.Context, c *cli.Command, err error) {
			cli.HandleExitCoder(err)
			fmt.Fprintf(c.ErrWriter, "Error: %v\n", err)
			os.Exit(1)
		},
	}
	_ = app.Run(context.Background(), os.Args)
}

// setup loads the configuration and returns a context carrying its logger.
func setup(ctx context.Context, c *cli.Command) (context.Context, config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return ctx, cfg, err
	}
	logger := logging.Stderr(cfg.Log)
	zerolog.DefaultContextLogger = &logger
	return logger.WithContext(ctx), cfg, nil
}

func startCommand() *cli.Command {
	return &cli.Command{
		Name:  "start",
		Usage: "start the REST server",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			ctx, cfg, err := setup(ctx, c)
			if err != nil {
				return err
			}
			pool, err := dbmanager.Open(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			cfg, err = resolveStored(ctx, pool, cfg)
			if err != nil {
				return err
			}
			s, err := server.CreateNewServer(cfg, pool,
				server.WithFs(afero.NewOsFs()),
				server.WithLogger(*zerolog.Ctx(ctx)))
			if err != nil {
				return err
			}
			return s.Run(ctx)
		},
	}
}

// resolveStored applies the settings kept in the database config store.
func resolveStored(ctx context.Context, pool *dbmanager.Pool, cfg config.Config) (config.Config, error) {
	cctx, err := db.ConnCtx(ctx, pool)
	if err != nil {
		return cfg, err
	}
	d := db.DB(cctx)
	defer d.Close(cctx)
	return config.NewStore(d, cfg).Resolved(cctx), nil
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply database schema migrations",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, cfg, err := setup(ctx, c)
			if err != nil {
				return err
			}
			pool, err := dbmanager.Open(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := db.Migrate(ctx, pool.DB()); err != nil {
				return err
			}
			zerolog.Ctx(ctx).Info().Msg("database is up to date")
			return nil
		},
	}
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "configuration helpers",
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "write a default configuration file",
				ArgsUsage: "[path]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "overwrite an existing file"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					path := c.Args().First()
					if path == "" {
						path = "fogcontroller.toml"
					}
					if err := config.WriteDefault(afero.NewOsFs(), path, c.Bool("force")); err != nil {
						return err
					}
					fmt.Fprintf(c.Root().Writer, "wrote %s\n", path)
					return nil
				},
			},
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the server and API versions",
		Action: func(ctx context.Context, c *cli.Command) error {
			fmt.Fprintf(c.Root().Writer, "%s (api %s)\n", api.ServerVersion, api.ApiVersion_2_0)
			return nil
		},
	}
}
