package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"go.uber.org/fx"

	"notify_relay/dal"
	"notify_relay/logic"
	"notify_relay/server"
	"notify_relay/shared"
	"notify_relay/texts"
)

type initErrorHandler struct {
}

func (*initErrorHandler) HandleError(err error) {
	fmt.Fprintf(os.Stderr, "Failed to initialize dependency injection\n%v", err)
}

var logger *log.Logger

func main() {

	cfg := shared.LoadConfig()
	provideConfig := func() *shared.Config {
		return cfg
	}

	logger = initLogger(cfg)
	provideLogger := func() shared.ILogger {
		return logger
	}

	provideConverter := func(cfg *shared.Config, logger shared.ILogger, txt texts.ITexts,
		cache logic.IEnrichCache, ledger logic.ILedgerClient) logic.IConverter {
		return logic.NewConverter(cfg, logger, txt, cache, ledger, rand.Float64)
	}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			provideConfig,
			provideLogger,
			server.NewHTTPServer,
			fx.Annotate(server.NewMux, fx.ParamTags(`group:"handler_group"`)),
			dal.NewRepo,
			func(repo *dal.Repo) dal.IRepo { return repo },
			provideTokenStore,
			logic.NewMetrics,
			logic.NewLedgerClient,
			logic.NewRegistryClient,
			logic.NewEnrichCache,
			provideConverter,
			logic.NewBatchSender,
			logic.NewWebhookVerifier,
			logic.NewWebhookInbox,
			logic.NewRelay,
			texts.NewTexts,
			shared.NewUserAgent,
			asHandlerGroupDef(server.NewWebhookHandlerGroup),
			asHandlerGroupDef(server.NewApiHandlerGroup),
			asHandlerGroupDef(server.NewMetricsHandlerGroup),
		),
		fx.Invoke(
			registerHooks,
			func(repo dal.IRepo) { repo.InitUpdateDb() },
			func(*http.Server) {},
			func(logic.IRelay) {},
		),
		fx.ErrorHook(&initErrorHandler{}),
	)
	app.Run()
}

func asHandlerGroupDef(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(server.IHandlerGroup)),
		fx.ResultTags(`group:"handler_group"`),
	)
}

func provideTokenStore(cfg *shared.Config, logger shared.ILogger, repo *dal.Repo) dal.ITokenStore {
	if cfg.TokenStore == shared.TokenStoreMemory {
		return dal.NewMemTokenStore(logger)
	}
	return repo
}

func initLogger(cfg *shared.Config) *log.Logger {

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		msg := fmt.Sprintf("Failed to open log file '%v': %v", cfg.LogFile, err)
		log.Fatal(msg)
	}

	logger := log.New(io.MultiWriter(os.Stdout, logFile))
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat("2006-01-02 15:04:05.000")
	logger.SetOutput(io.MultiWriter(os.Stdout, logFile))
	switch cfg.LogLevel {
	case "Debug":
		logger.SetLevel(log.DebugLevel)
	case "Info":
		logger.SetLevel(log.InfoLevel)
	case "Warn":
		logger.SetLevel(log.WarnLevel)
	case "Error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.ErrorLevel)
	}
	logger.SetReportCaller(true)

	return logger
}

func registerHooks(lc fx.Lifecycle, metrics logic.IMetrics) {
	lc.Append(
		fx.Hook{
			OnStart: func(context.Context) error {
				logger.Printf("Application starting up")
				metrics.ServiceStarted()
				return nil
			},
			OnStop: func(context.Context) error {
				logger.Printf("Application shutting down")
				return nil
			},
		},
	)
}
