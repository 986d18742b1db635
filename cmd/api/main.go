package main

import (
	"log"
	"sync"

	"github.com/abeheron1/mock-data-holder/internal/common/graceful"
	"github.com/abeheron1/mock-data-holder/internal/common/snapshot"
	"github.com/abeheron1/mock-data-holder/internal/config"
	"github.com/abeheron1/mock-data-holder/internal/deliveries/http"
	"github.com/abeheron1/mock-data-holder/internal/document"
	"github.com/abeheron1/mock-data-holder/internal/repositories"
	"github.com/abeheron1/mock-data-holder/internal/services"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	var (
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	conf, err := config.Load("config.json")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := newLogger(conf.App)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// A seed document that cannot be loaded is fatal: the whole API serves
	// views over it.
	doc, err := document.Load(conf.Seed.Path)
	if err != nil {
		logger.Fatal("failed to load seed document", zap.Error(err))
	}

	snap := snapshot.NewRef(doc)
	resourceRepo := repositories.NewJSONResourceRepository(snap, conf.Seed.DataHolderID)
	srv := services.New(conf, resourceRepo, logger)

	httpServer := http.NewHTTPServer(conf, logger, srv, func() bool {
		return !snap.Load().IsAbsent()
	})

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, httpServer.Stop())

	logger.Info("starting api",
		zap.String("name", conf.App.Name),
		zap.Int("port", conf.App.HTTPPort),
		zap.String("seed", conf.Seed.Path),
	)

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(conf.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	logger.Info("http server stopped!")
}

func newLogger(app config.App) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if app.LogLevel != "" {
		parsed, err := zapcore.ParseLevel(app.LogLevel)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	zapConf := zap.NewProductionConfig()
	if config.StringToEnvironment(app.Env).IsLocal() {
		zapConf = zap.NewDevelopmentConfig()
	}
	zapConf.Level = zap.NewAtomicLevelAt(level)

	return zapConf.Build()
}
