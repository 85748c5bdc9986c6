package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	Tango
	Session
	Redis
	HTTP
}

type Tango struct {
	Endpoint       string
	RequestTimeout time.Duration
}

type Session struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

func (r Redis) Enabled() bool {
	return r.Addr != ""
}

type HTTP struct {
	Host           string
	Port           string
	IdleTimeout    time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestSize int64
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		Tango: Tango{
			Endpoint:       cmd.String("endpoint"),
			RequestTimeout: cmd.Duration("request-timeout"),
		},
		Session: Session{
			TTL:           cmd.Duration("session-ttl"),
			SweepInterval: cmd.Duration("session-sweep-interval"),
		},
		Redis: Redis{
			Addr:     cmd.String("redis-addr"),
			Password: cmd.String("redis-password"),
			DB:       int(cmd.Int("redis-db")),
		},
		HTTP: HTTP{
			Host:           cmd.String("http-host"),
			Port:           cmd.String("http-port"),
			IdleTimeout:    cmd.Duration("http-idle-timeout"),
			ReadTimeout:    cmd.Duration("http-read-timeout"),
			WriteTimeout:   cmd.Duration("http-write-timeout"),
			MaxRequestSize: cmd.Int64("http-max-request-size"),
		},
	}
}
