// Command qrserver serves the QR generation HTTP API.
//
// Configuration comes from the environment (see the Config structs of the
// httpserver, api, storage, style and logger packages) and optional .env
// files given with -env.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/api"
	"github.com/dmitrymomot/qrkit/pkg/composer"
	"github.com/dmitrymomot/qrkit/pkg/config"
	"github.com/dmitrymomot/qrkit/pkg/httpserver"
	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/requestid"
	"github.com/dmitrymomot/qrkit/pkg/storage"
	"github.com/dmitrymomot/qrkit/pkg/style"
)

// Config is the complete server configuration.
type Config struct {
	Logger  logger.Config
	HTTP    httpserver.Config
	API     api.Config
	Storage storage.Config
	Style   style.Config
}

func main() {
	envFiles := flag.String("env", "", "comma separated .env files to load before reading the environment")
	flag.Parse()

	if err := run(context.Background(), *envFiles); err != nil {
		fmt.Fprintln(os.Stderr, "qrserver:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, envFiles string) error {
	if envFiles != "" {
		if err := config.LoadEnv(strings.Split(envFiles, ",")...); err != nil {
			return err
		}
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log, err := logger.FromConfig(cfg.Logger, logger.WithContextExtractors(requestid.LoggerExtractor()))
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	handler, err := newHandler(ctx, cfg, log)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, handler.Router())
}

func newHandler(ctx context.Context, cfg Config, log *slog.Logger) (*api.Handler, error) {
	c, err := composer.New(
		composer.WithDefaults(style.DefaultsFromConfig(cfg.Style)),
		composer.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	opts := []api.Option{api.WithConfig(cfg.API), api.WithLogger(log)}
	if cfg.Storage.Enabled() {
		st, err := storage.New(ctx, cfg.Storage)
		if err != nil {
			return nil, errors.Join(errors.New("storage setup failed"), err)
		}
		log.Info("storage enabled", slog.String("driver", cfg.Storage.Driver))
		opts = append(opts, api.WithStorage(st))
	}
	return api.New(c, opts...), nil
}
