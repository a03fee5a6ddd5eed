// Точка входа для AWS Lambda за API Gateway HTTP API.
package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/subrelay/internal/app"
	"github.com/InQaaaaGit/subrelay/internal/buildinfo"
	"github.com/InQaaaaGit/subrelay/internal/config"
	"github.com/InQaaaaGit/subrelay/internal/lambdaproxy"
	"github.com/InQaaaaGit/subrelay/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := buildinfo.New(buildVersion, buildDate, buildCommit)

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, flush, err := server.InitLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer flush()

	application, err := app.NewApp(cfg, logger)
	if err != nil {
		logger.Fatal("Error creating application", zap.Error(err))
	}

	// Без клиента Lambda прогревается только текущий экземпляр
	var invoker lambdaproxy.Invoker
	if client, err := lambdaproxy.NewLambdaInvoker(context.Background()); err != nil {
		logger.Warn("Self invocation disabled", zap.Error(err))
	} else {
		invoker = client
	}

	dispatcher := lambdaproxy.NewDispatcher(
		lambdaproxy.NewProxy(application.Router(), logger),
		lambdaproxy.NewWarmer(invoker, os.Getenv("AWS_LAMBDA_FUNCTION_NAME"), logger),
	)

	logger.Info("Lambda handler starting", info.Fields()...)
	lambda.Start(dispatcher.Handle)
}
