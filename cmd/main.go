package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/api/option"

	"github.com/satriahrh/audioclass/adapters/storage"
	"github.com/satriahrh/audioclass/adapters/stt"
	"github.com/satriahrh/audioclass/internal/api"
	"github.com/satriahrh/audioclass/internal/config"
	"github.com/satriahrh/audioclass/usecase"
)

func main() {
	// Load .env before anything reads the environment
	if err := config.LoadDotEnv(); err != nil {
		bootstrapLogger().Fatal("Failed to load .env file", zap.Error(err))
	}

	cfg, err := config.Load()
	if err != nil {
		bootstrapLogger().Fatal("Refusing to start", zap.Error(err))
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		bootstrapLogger().Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer logger.Sync()

	// Initialize adapters
	store, err := storage.NewLocalAudioStore(cfg.UploadDir, logger)
	if err != nil {
		logger.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	opts := []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsPath)}
	if cfg.SpeechEndpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.SpeechEndpoint))
	}
	speechToText, err := stt.NewGoogleSpeechToText(context.Background(), logger, opts...)
	if err != nil {
		logger.Fatal("Failed to initialize speech client", zap.Error(err))
	}
	defer speechToText.Close()

	// Initialize usecase services
	classificationService := usecase.NewClassificationService(store, speechToText, logger)

	e := api.NewServer(classificationService, logger, cfg.MaxUploadSize)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Audio classification server started",
		zap.String("port", cfg.Port),
		zap.String("uploadDir", cfg.UploadDir))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.IsDevelopment() {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

// bootstrapLogger is used before configuration is available
func bootstrapLogger() *zap.Logger {
	return buildOrFallback(func() (*zap.Logger, error) { return zap.NewProduction() })
}

// buildOrFallback never returns nil; a failed build falls back to a plain
// stdout logger so startup errors are still printed
func buildOrFallback(build func() (*zap.Logger, error)) *zap.Logger {
	logger, err := build()
	if err != nil || logger == nil {
		fallback := zap.NewExample()
		if err != nil {
			fallback.Warn("Falling back to example logger", zap.Error(err))
		}
		return fallback
	}
	return logger
}
