package main

import (
	"creingest/internal/ingest/handler"
	"creingest/internal/ingest/pipeline"
	"creingest/internal/ingest/publish"
	"creingest/internal/ingest/service"
	"creingest/pkg/app"
	"creingest/pkg/config"
	"creingest/pkg/kafka"
	kafka_config "creingest/pkg/kafka/config"
	kafka_middleware "creingest/pkg/kafka/middleware"
)

const ServiceName = "ingest"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting CRE ingest service")
	publisher := initPublisher(cfg)
	ingestService := initServices(cfg, publisher)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, handler.NewParseHandler(ingestService, cfg.Log))
	serverApp.OnShutdown(publisher)
	serverApp.Run()
}

func initServices(cfg *config.Config, publisher publish.RecordPublisher) service.IngestService {
	ingestService := service.NewIngestService(
		publisher,
		cfg,
		pipeline.CoStar{},
		pipeline.CREXi{},
	)

	cfg.Log.Info("Ingest service initialized", "sources", []string{pipeline.CoStar{}.Source(), pipeline.CREXi{}.Source()})
	return ingestService
}

func initPublisher(cfg *config.Config) publish.RecordPublisher {
	if !cfg.ExportEnabled {
		cfg.Log.Info("Record export disabled")
		return publish.Noop{}
	}

	kafkaCfg := kafka_config.Load()
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.ExportTopic, cfg.ExportDLQTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.MetricsProducerMiddleware())
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	}

	cfg.Log.Info("Record export enabled", "topic", cfg.ExportTopic, "dlq_topic", cfg.ExportDLQTopic)
	return publish.NewKafkaPublisher(producer)
}
