package main

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestBuildOrFallback_BuildError(t *testing.T) {
	logger := buildOrFallback(func() (*zap.Logger, error) {
		return nil, errors.New("cannot open sink")
	})

	if logger == nil {
		t.Fatal("Expected a fallback logger, got nil")
	}
	// must not panic
	logger.Info("still logging")
}

func TestBuildOrFallback_Success(t *testing.T) {
	built := zap.NewNop()

	if got := buildOrFallback(func() (*zap.Logger, error) { return built, nil }); got != built {
		t.Error("Expected the built logger to be returned")
	}
}

func TestBootstrapLogger(t *testing.T) {
	if bootstrapLogger() == nil {
		t.Error("Expected a bootstrap logger")
	}
}
