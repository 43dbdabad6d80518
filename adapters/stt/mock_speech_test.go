package stt

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/satriahrh/audioclass/domain/repositories"
)

func TestMockSpeechToText_Echo(t *testing.T) {
	m := NewMockSpeechToText(zap.NewNop(), nil)

	result, err := m.Recognize(context.Background(), repositories.RecognitionRequest{Audio: []byte(" hello world\n")})
	if err != nil {
		t.Fatalf("Recognize failed: %v", err)
	}
	if got := result.Groups[0].Alternatives[0].Transcript; got != "hello world" {
		t.Errorf("Expected 'hello world', got %q", got)
	}

	result, err = m.Recognize(context.Background(), repositories.RecognitionRequest{Audio: []byte("   ")})
	if err != nil {
		t.Fatalf("Recognize failed: %v", err)
	}
	if len(result.Groups) != 0 {
		t.Errorf("Expected empty result for blank audio, got %d groups", len(result.Groups))
	}

	if len(m.Requests()) != 2 {
		t.Errorf("Expected 2 recorded requests, got %d", len(m.Requests()))
	}
}

func TestMockSpeechToText_Static(t *testing.T) {
	boom := errors.New("boom")
	m := NewMockSpeechToText(zap.NewNop(), StaticResponder(nil, boom))

	if _, err := m.Recognize(context.Background(), repositories.RecognitionRequest{}); !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
}
