// Package server предоставляет общую функциональность для запуска HTTP и HTTPS серверов.
// Пакет инкапсулирует инициализацию логгера, запуск и корректную остановку сервера.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/subrelay/internal/config"
)

// Starter интерфейс для запуска сервера
type Starter interface {
	Start() error
}

// HTTPServer представляет HTTP сервер с общей логикой запуска
type HTTPServer struct {
	server *http.Server
	config *config.Config
	logger *zap.Logger
}

// NewHTTPServer создает новый HTTP сервер
func NewHTTPServer(server *http.Server, cfg *config.Config, logger *zap.Logger) *HTTPServer {
	return &HTTPServer{
		server: server,
		config: cfg,
		logger: logger,
	}
}

// Start запускает HTTP или HTTPS сервер в зависимости от конфигурации
func (s *HTTPServer) Start() error {
	if s.config.IsHTTPSEnabled() {
		return s.startHTTPS()
	}
	return s.startHTTP()
}

// Run запускает сервер и останавливает его после отмены ctx.
// Активные запросы получают ShutdownTimeout на завершение.
func (s *HTTPServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server", zap.Duration("timeout", s.config.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// startHTTPS запускает HTTPS сервер
func (s *HTTPServer) startHTTPS() error {
	s.logger.Info("Starting HTTPS server",
		zap.String("address", s.config.ServerAddress),
		zap.String("cert", s.config.TLSCertFile),
		zap.String("key", s.config.TLSKeyFile))

	return s.server.ListenAndServeTLS(s.config.TLSCertFile, s.config.TLSKeyFile)
}

// startHTTP запускает HTTP сервер
func (s *HTTPServer) startHTTP() error {
	s.logger.Info("Starting HTTP server", zap.String("address", s.config.ServerAddress))
	return s.server.ListenAndServe()
}

// InitLogger инициализирует production логгер заданного уровня
// и возвращает функцию синхронизации для defer
func InitLogger(level string) (*zap.Logger, func(), error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = atomicLevel
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing logger: %w", err)
	}

	cleanup := func() {
		if err := logger.Sync(); err != nil {
			log.Printf("Error syncing logger: %v", err)
		}
	}

	return logger, cleanup, nil
}
