package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/tango_form/internal/client/tango"
	"github.com/kurochkinivan/tango_form/internal/config"
	v1 "github.com/kurochkinivan/tango_form/internal/controller/http/v1"
	"github.com/kurochkinivan/tango_form/internal/form"
	"github.com/kurochkinivan/tango_form/internal/session"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("endpoint", a.cfg.Tango.Endpoint),
		slog.Duration("request_timeout", a.cfg.Tango.RequestTimeout),
		slog.Duration("session_ttl", a.cfg.Session.TTL),
	)

	client, err := tango.New(a.cfg.Tango.Endpoint, a.cfg.Tango.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to create tango client: %w", err)
	}

	var store session.SnapshotStore
	if a.cfg.Redis.Enabled() {
		a.log.InfoContext(ctx, "establishing redis connection",
			slog.String("redis_addr", a.cfg.Redis.Addr),
			slog.Int("redis_db", a.cfg.Redis.DB),
		)

		rdb, err := session.NewRedisClient(ctx, a.log, a.cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to create redis connection: %w", err)
		}
		defer rdb.Close()

		store = session.NewRedisStore(rdb)
	} else {
		a.log.InfoContext(ctx, "redis address is not set, sessions are kept in memory only")
	}

	registry := session.NewRegistry(a.log, a.cfg.Session, func() *form.ImageMessageForm {
		return form.New(a.log, client)
	}, store)

	return a.serve(ctx, registry)
}

func (a *App) serve(ctx context.Context, registry *session.Registry) error {
	server := v1.NewServer(a.log, a.cfg.HTTP, registry)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "session sweeper started",
			slog.Duration("sweep_interval", a.cfg.Session.SweepInterval),
		)
		return registry.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
