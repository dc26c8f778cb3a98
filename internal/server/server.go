package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/akolanti/CampusQA/internal/adapter/utils"
	"github.com/akolanti/CampusQA/internal/config"
	"github.com/akolanti/CampusQA/internal/handlers"
	"github.com/akolanti/CampusQA/internal/middleware"
	"github.com/akolanti/CampusQA/internal/qa"
	"github.com/akolanti/CampusQA/pkg/logger_i"
	"github.com/go-chi/chi/v5"
)

func NewRouter(service qa.Service) *chi.Mux {
	r := utils.NewRouter()
	h := handlers.NewQueryHandler(service)

	r.Post("/query", middleware.Wrap(h.Query))
	r.Get("/health", middleware.Wrap(h.Health))
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully within
// config.ShutdownContextTimeout.
func Run(ctx context.Context, listenAddr string, service qa.Service) error {
	logger := logger_i.NewLogger("Server")

	server := &http.Server{
		Addr:         listenAddr,
		Handler:      NewRouter(service),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server is listening at", "address", listenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server crashed", "error", err, "addr", listenAddr)
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Server is shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	server.SetKeepAlivesEnabled(false)
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Could not shutdown gracefully", "error", err)
		return err
	}
	logger.Info("Server stopped")
	return nil
}
