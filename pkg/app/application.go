package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/julienschmidt/httprouter"

	"github.com/elmaatouquii/Gestion-Hotel/internal/storage"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/config"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/contracts"
	"github.com/elmaatouquii/Gestion-Hotel/pkg/middleware"
)

// Application owns the HTTP server lifecycle: route assembly, the middleware
// stack, and graceful shutdown including the storage backend.
type Application struct {
	cfg    *config.Config
	store  storage.Store
	server *http.Server
}

func NewApplication(cfg *config.Config, store storage.Store) *Application {
	return &Application{cfg: cfg, store: store}
}

// SetHandlers mounts every handler on one router and wraps it with the
// middleware stack. Recovery sits outermost so a panic anywhere below it
// still produces a JSON 500.
func (a *Application) SetHandlers(handlers ...contracts.Handler) {
	router := httprouter.New()
	for _, h := range handlers {
		h.RegisterRoutes(router)
	}

	var httpHandler http.Handler = router
	httpHandler = middleware.RequestTimeout(a.cfg.RequestTimeout)(httpHandler)
	httpHandler = middleware.RequestLogging(a.cfg.Log)(httpHandler)
	httpHandler = middleware.Recovery(a.cfg.Log)(httpHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}
	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	if err := a.store.Close(ctx); err != nil {
		a.cfg.Log.Error("Storage close failed", "error", err)
	}

	a.cfg.Log.Info("Server stopped gracefully")
}
