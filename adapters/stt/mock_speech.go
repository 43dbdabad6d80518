package stt

import (
	"bytes"
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/satriahrh/audioclass/domain/repositories"
)

// Responder decides what the mock backend answers for a request
type Responder func(ctx context.Context, req repositories.RecognitionRequest) (*repositories.RecognitionResult, error)

// MockSpeechToText is a scripted, deterministic recognizer
type MockSpeechToText struct {
	logger  *zap.Logger
	respond Responder

	mu       sync.Mutex
	requests []repositories.RecognitionRequest
}

// Ensure MockSpeechToText implements the SpeechRecognizer interface
var _ repositories.SpeechRecognizer = (*MockSpeechToText)(nil)

// NewMockSpeechToText creates a mock recognizer. A nil responder echoes the
// audio content back as the transcript.
func NewMockSpeechToText(logger *zap.Logger, respond Responder) *MockSpeechToText {
	if respond == nil {
		respond = EchoResponder
	}
	return &MockSpeechToText{
		logger:  logger,
		respond: respond,
	}
}

// Recognize implements repositories.SpeechRecognizer
func (m *MockSpeechToText) Recognize(ctx context.Context, req repositories.RecognitionRequest) (*repositories.RecognitionResult, error) {
	m.logger.Info("Processing mock recognition",
		zap.Int("audioSize", len(req.Audio)),
		zap.Int("sampleRate", req.Config.SampleRateHertz),
		zap.String("encoding", req.Config.Encoding),
		zap.String("language", req.Config.LanguageCode))

	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	return m.respond(ctx, req)
}

// Requests returns a copy of every request seen so far
func (m *MockSpeechToText) Requests() []repositories.RecognitionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]repositories.RecognitionRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// StaticResponder always answers with the same result and error
func StaticResponder(result *repositories.RecognitionResult, err error) Responder {
	return func(context.Context, repositories.RecognitionRequest) (*repositories.RecognitionResult, error) {
		return result, err
	}
}

// EchoResponder treats the audio bytes as the spoken text. Blank audio
// produces an empty result set.
func EchoResponder(_ context.Context, req repositories.RecognitionRequest) (*repositories.RecognitionResult, error) {
	text := bytes.TrimSpace(req.Audio)
	if len(text) == 0 {
		return &repositories.RecognitionResult{}, nil
	}
	return TranscriptResult(string(text)), nil
}

// TranscriptResult builds a single result group holding the given
// alternatives in order
func TranscriptResult(transcripts ...string) *repositories.RecognitionResult {
	group := repositories.ResultGroup{}
	for _, t := range transcripts {
		group.Alternatives = append(group.Alternatives, repositories.Alternative{
			Transcript: t,
			Confidence: 0.9,
		})
	}
	return &repositories.RecognitionResult{
		Groups: []repositories.ResultGroup{group},
	}
}
