package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"

	"netsentry/adapters/mongo"
	"netsentry/adapters/postgres"
	"netsentry/internal"
	"netsentry/internal/config"
	"netsentry/internal/pipeline"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := internal.DefaultLogger

	cfg, err := config.Load(time.Now())
	if err != nil {
		log.Error("configuration: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()

	exporter, err := mongo.NewExporter(ctx, cfg.Ingestion.DatabaseURL, cfg.Ingestion.DatabaseName, cfg.Ingestion.CollectionName)
	if err != nil {
		log.Error("document store: %v", err)
		os.Exit(1)
	}
	defer exporter.Close(ctx)

	var recorder pipeline.RunRecorder
	if cfg.Registry.Enabled {
		registry, err := postgres.Connect(ctx, cfg.Registry.DatabaseURL)
		if err != nil {
			log.Error("run registry: %v", err)
			os.Exit(1)
		}
		defer registry.Close()
		recorder = registry
	}

	art, err := pipeline.New(cfg, exporter, recorder).Run(ctx)
	if err != nil {
		log.Error("pipeline failed: %v", err)
		os.Exit(1)
	}

	if !art.ValidationStatus {
		log.Warn("validation rejected the data; see %s", art.InvalidTrainFilePath)
		os.Exit(2)
	}
	log.Info("validation accepted the data; drift report at %s", art.DriftReportFilePath)
}
