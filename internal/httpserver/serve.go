package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"contentHub/internal/logger"
)

// Serve runs the server until ctx is cancelled, then shuts it down
// gracefully. It returns the first error from ListenAndServe, if any.
func Serve(ctx context.Context, bind string, handler http.Handler) error {
	server := &http.Server{
		Handler:           handler,
		Addr:              bind,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	return serve(ctx, server, server.ListenAndServe)
}

func serve(ctx context.Context, server *http.Server, listen func() error) error {
	log := logger.FromContext(ctx).With().Str("server.addr", server.Addr).Logger()

	errc := make(chan error, 1)
	go func() {
		log.Info().Msg("starting HTTP server")
		errc <- listen()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("initiating shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	log.Info().Msg("shutdown completed")
	return nil
}
