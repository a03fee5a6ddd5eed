package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/subrelay/internal/app"
	"github.com/InQaaaaGit/subrelay/internal/buildinfo"
	"github.com/InQaaaaGit/subrelay/internal/config"
	"github.com/InQaaaaGit/subrelay/internal/server"
)

// Значения задаются через -ldflags "-X main.buildVersion=..."
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := buildinfo.New(buildVersion, buildDate, buildCommit)
	if err := info.Fprint(os.Stdout); err != nil {
		log.Printf("Error printing build info: %v", err)
	}

	// Инициализация конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Инициализация логгера
	logger, flush, err := server.InitLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer flush()

	application, err := app.NewApp(cfg, logger)
	if err != nil {
		logger.Fatal("Error creating application", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	logger.Info("Subtitle relay starting",
		append(info.Fields(),
			zap.String("address", cfg.ServerAddress),
			zap.String("model", cfg.GeminiModel))...)

	if err := application.Run(ctx); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}
