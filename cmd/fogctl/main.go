// Command fogctl administers the fog controller database directly.
package main

import (
	"context"
	"os"

	"github.com/mugiliam/fogcontroller/internal/cli"
	"github.com/mugiliam/fogcontroller/internal/common"
	"github.com/mugiliam/fogcontroller/internal/config"
	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/dbmanager"
	"github.com/mugiliam/fogcontroller/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

func main() {
	logger := logging.Stderr(logging.DefaultConfig())
	zerolog.DefaultContextLogger = &logger
	ctx := logger.WithContext(context.Background())

	app := &cli.App{
		Open: open,
		Fs:   afero.NewOsFs(),
		Out:  os.Stdout,
		Err:  os.Stderr,
	}
	os.Exit(app.Execute(ctx, os.Args[1:]))
}

func open(ctx context.Context, configFile string) (context.Context, *cli.Services, func(), error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := logging.Stderr(cfg.Log)
	ctx = logger.WithContext(ctx)

	pool, err := dbmanager.Open(ctx, cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, err = db.ConnCtx(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, nil, nil, err
	}
	ctx = common.SetConfigInContext(ctx, &cfg)
	release := func() {
		db.DB(ctx).Close(ctx)
		pool.Close()
	}
	return ctx, cli.NewServices(cfg), release, nil
}
