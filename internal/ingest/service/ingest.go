package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"creingest/internal/ingest/pipeline"
	"creingest/internal/ingest/publish"
	"creingest/pkg/config"
	apperrors "creingest/pkg/errors"
	"creingest/pkg/model"
)

type IngestService interface {
	// Parse runs the pipeline registered for source over an uploaded
	// export and returns the normalized records in worksheet order.
	Parse(ctx context.Context, source string, r io.Reader) ([]model.Record, error)
}

type ingestService struct {
	pipelines map[string]pipeline.Pipeline
	publisher publish.RecordPublisher
	cfg       *config.Config
}

func NewIngestService(publisher publish.RecordPublisher, cfg *config.Config, pipelines ...pipeline.Pipeline) IngestService {
	bySource := make(map[string]pipeline.Pipeline, len(pipelines))
	for _, p := range pipelines {
		bySource[p.Source()] = p
	}

	return &ingestService{
		pipelines: bySource,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *ingestService) Parse(ctx context.Context, source string, r io.Reader) ([]model.Record, error) {
	p, ok := s.pipelines[source]
	if !ok {
		s.cfg.Log.Warn("parse requested for unknown source", "source", source)
		return nil, apperrors.InvalidInput(fmt.Sprintf("no pipeline registered for source %q", source))
	}

	start := time.Now()

	records, err := p.Run(r)
	if err != nil {
		s.cfg.Log.Error("export parse failed",
			"source", source,
			"error", err,
		)
		return nil, apperrors.Internal(fmt.Sprintf("failed to parse %s export", source), err)
	}

	s.cfg.Log.Info("export parsed",
		"source", source,
		"records", len(records),
		"duration", time.Since(start),
	)

	// Export is best effort. The parse response never depends on the
	// broker being reachable.
	if err := s.publisher.PublishBatch(ctx, source, records); err != nil {
		s.cfg.Log.Error("record export failed",
			"source", source,
			"records", len(records),
			"error", err,
		)
	}

	return records, nil
}
