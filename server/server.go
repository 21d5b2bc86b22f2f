// Package server exposes the client records over HTTP for the TUI (and any
// other consumer). The surface is deliberately small: a paged client list in
// a {status, data} envelope plus record-level CRUD.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/adviceworks/casedesk/clients"
)

// Config holds daemon configuration, populated by the config loader.
type Config struct {
	Addr            string `mapstructure:"addr"`
	DBPath          string `mapstructure:"db_path"`
	DefaultPageSize int    `mapstructure:"default_page_size"`
	SeedDemo        bool   `mapstructure:"seed_demo"`
}

// Router assembles the chi router over the given store.
func Router(store clients.Store, log *zap.Logger, defaultPageSize int) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	h := &clientHandler{store: store, log: log, defaultPageSize: defaultPageSize}

	r := chi.NewRouter()
	r.Use(recovery(log))
	r.Use(requestLogging(log))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1/clients", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.remove)
	})

	return r
}

// Run serves the router until ctx is cancelled.
func Run(ctx context.Context, cfg Config, store clients.Store, log *zap.Logger) error {
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: Router(store, log, cfg.DefaultPageSize),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Info("client api listening", zap.String("addr", cfg.Addr))
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func recovery(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("handler panic", zap.Any("panic", rec), zap.String("path", r.URL.Path))
					writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func requestLogging(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("took", time.Since(start)))
		})
	}
}
