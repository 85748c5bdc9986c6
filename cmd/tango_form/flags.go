package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/tango_form/internal/app"
	"github.com/kurochkinivan/tango_form/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "tango_form",
		Usage:   "Image message form for the /tango endpoint",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:      "endpoint",
			Aliases:   []string{"e"},
			Usage:     "Set base URL of the server exposing /tango",
			Value:     "http://localhost:8000",
			Sources:   cli.NewValueSourceChain(yaml.YAML("tango.endpoint", altsrc.NewStringPtrSourcer(&config))),
			Required:  true,
			Validator: validateEndpoint,
		},
		&cli.DurationFlag{
			Name:    "request-timeout",
			Usage:   "Set timeout of a request to /tango",
			Value:   30 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("tango.request_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:      "session-ttl",
			Usage:     "Set how long an idle form session is kept",
			Value:     30 * time.Minute,
			Sources:   cli.NewValueSourceChain(yaml.YAML("session.ttl", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositiveDuration,
		},
		&cli.DurationFlag{
			Name:      "session-sweep-interval",
			Usage:     "Set interval of idle session eviction",
			Value:     1 * time.Minute,
			Sources:   cli.NewValueSourceChain(yaml.YAML("session.sweep_interval", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositiveDuration,
		},
		&cli.StringFlag{
			Name:    "redis-addr",
			Usage:   "Set Redis address for session snapshots, empty keeps sessions in memory",
			Sources: cli.NewValueSourceChain(yaml.YAML("redis.addr", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "redis-password",
			Usage:   "Set Redis password",
			Sources: cli.NewValueSourceChain(yaml.YAML("redis.password", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:    "redis-db",
			Usage:   "Set Redis database number",
			Sources: cli.NewValueSourceChain(yaml.YAML("redis.db", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   45 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.Int64Flag{
			Name:      "http-max-request-size",
			Usage:     "Set maximum size of an upload request in bytes",
			Value:     32 << 20,
			Sources:   cli.NewValueSourceChain(yaml.YAML("http.max_request_size", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateRequestSize,
		},
	}
}

func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", endpoint, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q must use http or https", endpoint)
	}

	if u.Host == "" {
		return fmt.Errorf("%q has no host", endpoint)
	}

	return nil
}

func validateRequestSize(size int64) error {
	if size <= 0 {
		return fmt.Errorf("request size must be positive, got %d", size)
	}

	return nil
}

func validatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %s", d)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
