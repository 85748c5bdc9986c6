package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/tango_form/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(log *slog.Logger, cfg config.HTTP, forms FormProvider) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, cfg.MaxRequestSize, forms),
		},
	}
}

func NewRouter(log *slog.Logger, maxRequestSize int64, forms FormProvider) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", Health)

	h := NewFormHandler(log, maxRequestSize, forms)
	r.Group(func(r chi.Router) {
		r.Use(withSession)

		r.Get("/", h.Page)
		r.Post("/image", h.SelectImage)
		r.Post("/submit", h.Submit)
		r.Post("/reset", h.Reset)

		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/form", h.State)
		})
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
