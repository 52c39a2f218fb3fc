package main

import "go.uber.org/zap"

var rollLogger *zap.Logger

func initLogger(path string) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	rollLogger = logger
}

func closeLogger() {
	if rollLogger != nil {
		rollLogger.Sync()
		rollLogger = nil
	}
}
