// Package http собирает gin-роутеры сервиса и запускает HTTP-серверы
// с корректной остановкой.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

type Server struct {
	name   string
	srv    *http.Server
	logger *zap.SugaredLogger
}

func NewServer(name, addr string, handler http.Handler, logger *zap.SugaredLogger) *Server {
	return &Server{
		name: name,
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger: logger,
	}
}

// Run слушает адрес сервера до отмены ctx, после чего останавливает сервер,
// давая активным запросам до shutdownTimeout на завершение.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Infow("Starting HTTP server", "server", s.name, "addr", s.srv.Addr)

	errCh := make(chan error, 1)
	go func() {
		err := s.srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Infow("Shutting down server", "server", s.name)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Errorw("Error shutting down server", "server", s.name, "error", err)
		return err
	}
	return <-errCh
}
