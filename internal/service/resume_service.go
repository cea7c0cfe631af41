package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/metrics"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/storage"
)

type ResumeService interface {
	// Parse stores the uploaded resume and runs it through the parser,
	// returning the extracted fields without touching any profile.
	Parse(ctx context.Context, resume *Upload) (*domain.ExtractionResult, string, error)
}

type resumeService struct {
	files     domain.FileStore
	extractor domain.ResumeExtractor
	metrics   *metrics.Collector
	logger    zerolog.Logger
}

func NewResumeService(
	files domain.FileStore,
	extractor domain.ResumeExtractor,
	collector *metrics.Collector,
	logger zerolog.Logger,
) ResumeService {
	return &resumeService{
		files:     files,
		extractor: extractor,
		metrics:   collector,
		logger:    logger,
	}
}

func (s *resumeService) Parse(ctx context.Context, resume *Upload) (*domain.ExtractionResult, string, error) {
	if resume == nil {
		return nil, "", storage.ErrEmptyFile
	}
	if err := storage.ValidateResume(int64(len(resume.Data)), resume.ContentType); err != nil {
		return nil, "", err
	}

	path, err := s.files.Save(resume.Data, resume.Name, domain.FileCategoryResume)
	if err != nil {
		return nil, "", fmt.Errorf("store resume: %w", err)
	}

	abs, err := s.files.Resolve(path)
	if err != nil {
		s.files.Delete(path)
		return nil, "", fmt.Errorf("resolve resume path: %w", err)
	}

	res, err := s.extractor.Extract(ctx, abs)
	if err != nil {
		// No profile references the file yet, so do not keep it around
		// when the parse fails.
		s.files.Delete(path)
		s.metrics.RecordExtraction("failed")
		s.logger.Error().Err(err).Str("file", resume.Name).Msg("standalone resume parse failed")
		return nil, "", err
	}

	s.metrics.RecordExtraction("ok")
	return res, path, nil
}
