// Package app содержит основную структуру приложения и логику инициализации.
// Собирает клиент Gemini, сервис перевода, обработчики и маршруты.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/subrelay/internal/config"
	"github.com/InQaaaaGit/subrelay/internal/gemini"
	"github.com/InQaaaaGit/subrelay/internal/handler"
	"github.com/InQaaaaGit/subrelay/internal/server"
	"github.com/InQaaaaGit/subrelay/internal/service"
)

// TranslatePath - маршрут ретранслятора перевода
const TranslatePath = "/api/translate"

// App представляет приложение ретранслятора перевода субтитров.
// Инкапсулирует конфигурацию, HTTP роутер, логгер и обработчики запросов.
type App struct {
	config  *config.Config
	router  *chi.Mux
	logger  *zap.Logger
	handler *handler.Handler
}

// NewApp создает приложение и регистрирует маршруты.
//
// Параметры:
//   - cfg: конфигурация приложения с настройками сервера и Gemini API
//   - logger: логгер, который получают все слои
//
// Возвращает указатель на App или ошибку при неудачной инициализации зависимостей.
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	return NewAppWithGenerator(cfg, logger, gemini.NewClient(cfg.GeminiOptions()))
}

// NewAppWithGenerator создает приложение с заданным генератором текста
func NewAppWithGenerator(cfg *config.Config, logger *zap.Logger, generator service.Generator) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	svc, err := service.NewTranslationService(generator, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating service: %w", err)
	}

	a := &App{
		config:  cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		handler: handler.NewHandler(svc, logger),
	}
	a.setupRoutes()
	return a, nil
}

// setupRoutes настраивает HTTP маршруты и middleware для приложения.
func (a *App) setupRoutes() {
	// Middleware. Recovery стоит внутри gzip, чтобы ответ 500 попал в сжатый поток до его закрытия.
	a.router.Use(a.handler.WithRequestID)
	a.router.Use(a.handler.WithLogging)
	a.router.Use(a.handler.WithGzip)
	a.router.Use(a.handler.WithRecovery)

	// Routes: ретранслятор сам отвечает 405 на любые методы, кроме POST
	a.router.HandleFunc(TranslatePath, a.handler.HandleTranslate)
	a.router.Get("/ping", a.handler.HandlePing)
	a.router.Head("/ping", a.handler.HandlePing)

	// Профилирование (только при ENABLE_PPROF)
	if a.config.IsPprofEnabled() {
		a.router.Mount("/debug", chimiddleware.Profiler())
	}
}

// Router возвращает настроенный обработчик всех маршрутов
func (a *App) Router() http.Handler {
	return a.router
}

// GetServer создает и возвращает настроенный HTTP сервер.
func (a *App) GetServer() *http.Server {
	return &http.Server{
		Addr:         a.config.ServerAddress,
		Handler:      a.router,
		ReadTimeout:  a.config.ReadTimeout,
		WriteTimeout: a.config.WriteTimeout,
		IdleTimeout:  a.config.IdleTimeout,
	}
}

// Run запускает HTTP или HTTPS сервер и блокируется до отмены ctx
func (a *App) Run(ctx context.Context) error {
	return server.NewHTTPServer(a.GetServer(), a.config, a.logger).Run(ctx)
}
