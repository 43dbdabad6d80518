package usecase_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc/codes"

	"github.com/satriahrh/audioclass/adapters/storage"
	"github.com/satriahrh/audioclass/adapters/stt"
	"github.com/satriahrh/audioclass/domain"
	"github.com/satriahrh/audioclass/domain/entities"
	"github.com/satriahrh/audioclass/domain/repositories"
	"github.com/satriahrh/audioclass/usecase"
)

func setupService(t *testing.T, respond stt.Responder) (*usecase.ClassificationService, *stt.MockSpeechToText, string) {
	t.Helper()
	logger := zaptest.NewLogger(t)

	dir := t.TempDir()
	store, err := storage.NewLocalAudioStore(dir, logger)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	recognizer := stt.NewMockSpeechToText(logger, respond)

	return usecase.NewClassificationService(store, recognizer, logger), recognizer, dir
}

func TestClassificationService_Speech(t *testing.T) {
	svc, recognizer, dir := setupService(t, stt.StaticResponder(stt.TranscriptResult("hello world"), nil))

	outcome, err := svc.Classify(context.Background(), entities.UploadedClip{
		Filename:     "speech_sample.ogg",
		Content:      []byte("OggS speech"),
		LanguageCode: "en-US",
	})
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if outcome != entities.SpeechOutcome("hello world") {
		t.Errorf("Unexpected outcome %+v", outcome)
	}

	// the clip stays on disk after the request
	stored, err := os.ReadFile(filepath.Join(dir, "speech_sample.ogg"))
	if err != nil {
		t.Fatalf("Expected stored clip: %v", err)
	}
	if string(stored) != "OggS speech" {
		t.Errorf("Unexpected stored content %q", stored)
	}

	reqs := recognizer.Requests()
	if len(reqs) != 1 {
		t.Fatalf("Expected 1 backend call, got %d", len(reqs))
	}
	if string(reqs[0].Audio) != "OggS speech" {
		t.Errorf("Expected backend to receive stored bytes, got %q", reqs[0].Audio)
	}
	if reqs[0].Config.LanguageCode != "en-US" {
		t.Errorf("Expected language en-US, got %s", reqs[0].Config.LanguageCode)
	}
}

func TestClassificationService_NonSpeech(t *testing.T) {
	svc, _, _ := setupService(t, stt.StaticResponder(&repositories.RecognitionResult{}, nil))

	outcome, err := svc.Classify(context.Background(), entities.UploadedClip{
		Filename: "silence.ogg",
		Content:  []byte("OggS silence"),
	})
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if outcome != entities.NonSpeechOutcome() {
		t.Errorf("Unexpected outcome %+v", outcome)
	}
}

func TestClassificationService_BackendError(t *testing.T) {
	backendErr := &domain.BackendError{Code: codes.Unauthenticated.String(), Message: "invalid credentials"}
	svc, _, _ := setupService(t, stt.StaticResponder(nil, backendErr))

	_, err := svc.Classify(context.Background(), entities.UploadedClip{
		Filename: "clip.ogg",
		Content:  []byte("x"),
	})

	var got *domain.BackendError
	if !errors.As(err, &got) {
		t.Fatalf("Expected BackendError, got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid credentials") {
		t.Errorf("Expected backend message in error, got %s", err.Error())
	}
}

func TestClassificationService_StorageError(t *testing.T) {
	svc, recognizer, _ := setupService(t, nil)

	_, err := svc.Classify(context.Background(), entities.UploadedClip{
		Filename: filepath.Join("no", "such", "dir.ogg"),
		Content:  []byte("x"),
	})

	var got *domain.StorageError
	if !errors.As(err, &got) {
		t.Fatalf("Expected StorageError, got %v", err)
	}
	if len(recognizer.Requests()) != 0 {
		t.Error("Backend must not be called when storing fails")
	}
}

// unreadableStore stores fine but cannot read back
type unreadableStore struct{}

func (unreadableStore) Save(_ context.Context, name string, r io.Reader) (string, error) {
	_, err := io.Copy(io.Discard, r)
	return name, err
}

func (unreadableStore) Read(_ context.Context, path string) ([]byte, error) {
	return nil, &domain.StorageError{Op: "read", Path: path, Err: os.ErrPermission}
}

func TestClassificationService_ReadBackError(t *testing.T) {
	logger := zaptest.NewLogger(t)
	recognizer := stt.NewMockSpeechToText(logger, nil)
	svc := usecase.NewClassificationService(unreadableStore{}, recognizer, logger)

	_, err := svc.Classify(context.Background(), entities.UploadedClip{Filename: "a.ogg", Content: []byte("x")})

	var got *domain.StorageError
	if !errors.As(err, &got) || got.Op != "read" {
		t.Fatalf("Expected read StorageError, got %v", err)
	}
	if len(recognizer.Requests()) != 0 {
		t.Error("Backend must not be called when read-back fails")
	}
}

func TestClassificationService_OverwriteUsesNewContent(t *testing.T) {
	svc, _, _ := setupService(t, nil)
	ctx := context.Background()

	first, err := svc.Classify(ctx, entities.UploadedClip{Filename: "clip.ogg", Content: []byte("old words that are longer")})
	if err != nil {
		t.Fatalf("First classify failed: %v", err)
	}
	second, err := svc.Classify(ctx, entities.UploadedClip{Filename: "clip.ogg", Content: []byte("new words")})
	if err != nil {
		t.Fatalf("Second classify failed: %v", err)
	}

	if first.Transcript != "old words that are longer" {
		t.Errorf("Unexpected first transcript %q", first.Transcript)
	}
	if second.Transcript != "new words" {
		t.Errorf("Expected new content to be classified, got %q", second.Transcript)
	}
}

func TestClassificationService_Idempotent(t *testing.T) {
	svc, _, _ := setupService(t, nil)
	ctx := context.Background()
	clip := entities.UploadedClip{Filename: "same.ogg", Content: []byte("hello world"), LanguageCode: "en-US"}

	first, err := svc.Classify(ctx, clip)
	if err != nil {
		t.Fatalf("First classify failed: %v", err)
	}
	second, err := svc.Classify(ctx, clip)
	if err != nil {
		t.Fatalf("Second classify failed: %v", err)
	}

	if first != second {
		t.Errorf("Expected identical outcomes, got %+v and %+v", first, second)
	}
}

func TestClassificationService_DefaultLanguage(t *testing.T) {
	svc, recognizer, _ := setupService(t, nil)

	if _, err := svc.Classify(usecase.WithRequestID(context.Background(), "req-1"), entities.UploadedClip{
		Filename: "a.ogg",
		Content:  []byte("hi"),
	}); err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if got := recognizer.Requests()[0].Config.LanguageCode; got != "en-US" {
		t.Errorf("Expected default language en-US, got %s", got)
	}
}

func TestClassificationService_NilResult(t *testing.T) {
	svc, recognizer, _ := setupService(t, stt.StaticResponder(nil, nil))

	outcome, err := svc.Classify(context.Background(), entities.UploadedClip{
		Filename: "a.ogg",
		Content:  []byte("x"),
	})
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if outcome != entities.NonSpeechOutcome() {
		t.Errorf("Expected non-speech outcome for a nil result, got %+v", outcome)
	}
	if len(recognizer.Requests()) != 1 {
		t.Errorf("Expected 1 backend call, got %d", len(recognizer.Requests()))
	}
}
