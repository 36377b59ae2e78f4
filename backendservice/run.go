// Package backendservice boots the voxroom backend HTTP server.
package backendservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/voxroom/voxroom-backend/internal/api"
	"github.com/voxroom/voxroom-backend/internal/config"
	"github.com/voxroom/voxroom-backend/internal/events"
	"github.com/voxroom/voxroom-backend/internal/llm"
	"github.com/voxroom/voxroom-backend/internal/logger"
	"github.com/voxroom/voxroom-backend/internal/memory"
)

// handoffBusBuffer bounds queued handoff events; overflow is dropped with a
// warning rather than blocking request handlers.
const handoffBusBuffer = 64

// Run starts the backend HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("voxroom-backend")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	// Cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := memory.NewStore()

	provider := llm.FromConfig(cfg)
	if provider == nil {
		log.Warn().Msg("No LLM provider configured; chat replies will echo input")
	} else {
		log.Info().Str("provider", provider.Name()).Msg("LLM provider selected")
	}

	bus := events.NewBus(handoffBusBuffer)
	go consumeHandoffs(ctx, bus, log)

	router := api.NewRouter(cfg, store, provider, bus, log)

	server := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// consumeHandoffs drains the handoff bus for the life of the process. Until a
// real broker integration exists, logging is the only consumer.
func consumeHandoffs(ctx context.Context, bus *events.Bus, log zerolog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-bus.Subscribe():
			log.Info().
				Str("from_user", evt.FromUser).
				Str("to_agent", evt.ToAgent).
				Int("context_size", evt.ContextSize).
				Msg("handoff requested")
		}
	}
}
