package usecase

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/satriahrh/audioclass/domain/entities"
	"github.com/satriahrh/audioclass/domain/repositories"
)

type requestIDKey struct{}

// WithRequestID attaches a request ID that is added to every log line of the
// pipeline
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// ClassificationService orchestrates one upload: store, re-read, build the
// recognition request, call the backend and classify the answer
type ClassificationService struct {
	store      repositories.AudioStore
	recognizer repositories.SpeechRecognizer
	logger     *zap.Logger
}

// NewClassificationService creates a new classification service
func NewClassificationService(
	store repositories.AudioStore,
	recognizer repositories.SpeechRecognizer,
	logger *zap.Logger,
) *ClassificationService {
	return &ClassificationService{
		store:      store,
		recognizer: recognizer,
		logger:     logger,
	}
}

// Classify runs the pipeline for a single clip. Exactly one of the outcome or
// the error is meaningful; errors are StorageError or BackendError.
func (s *ClassificationService) Classify(ctx context.Context, clip entities.UploadedClip) (entities.ClassificationOutcome, error) {
	logger := s.logger.With(
		zap.String("requestID", requestIDFrom(ctx)),
		zap.String("filename", clip.Filename),
		zap.String("language", clip.LanguageCode))

	logger.Info("Clip received", zap.Int("size", len(clip.Content)))

	// Step 1: persist to disk
	path, err := s.store.Save(ctx, clip.Filename, bytes.NewReader(clip.Content))
	if err != nil {
		return entities.ClassificationOutcome{}, fmt.Errorf("failed to store clip: %w", err)
	}

	// Step 2: re-read what was actually stored
	audio, err := s.store.Read(ctx, path)
	if err != nil {
		return entities.ClassificationOutcome{}, fmt.Errorf("failed to read stored clip: %w", err)
	}
	logger.Debug("Clip stored", zap.String("path", path), zap.Int("storedSize", len(audio)))

	// Step 3: build the recognition request
	req := BuildRecognitionRequest(audio, clip.LanguageCode)

	// Step 4: call the backend
	result, err := s.recognizer.Recognize(ctx, req)
	if err != nil {
		return entities.ClassificationOutcome{}, fmt.Errorf("recognition failed: %w", err)
	}

	// Step 5: classify
	outcome, err := Classify(result)
	if err != nil {
		return entities.ClassificationOutcome{}, fmt.Errorf("classification failed: %w", err)
	}

	logger.Info("Clip classified",
		zap.Int("results", result.Count()),
		zap.String("classification", string(outcome.Classification)),
		zap.Int("transcriptLength", len(outcome.Transcript)))

	return outcome, nil
}
