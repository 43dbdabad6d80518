package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/satriahrh/audioclass/domain"
	"github.com/satriahrh/audioclass/domain/repositories"
)

// LocalAudioStore writes uploaded clips into a single directory on local disk.
// Files are keyed by the client supplied name and are never removed here; a
// second upload with the same name overwrites the first.
type LocalAudioStore struct {
	dir    string
	logger *zap.Logger
}

// Ensure LocalAudioStore implements the AudioStore interface
var _ repositories.AudioStore = (*LocalAudioStore)(nil)

// NewLocalAudioStore creates the upload directory if it is missing
func NewLocalAudioStore(dir string, logger *zap.Logger) (*LocalAudioStore, error) {
	if dir == "" {
		return nil, errors.New("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	logger.Info("Upload directory ready", zap.String("dir", dir))

	return &LocalAudioStore{
		dir:    dir,
		logger: logger,
	}, nil
}

// Dir returns the directory clips are written to
func (s *LocalAudioStore) Dir() string {
	return s.dir
}

// Save implements repositories.AudioStore
func (s *LocalAudioStore) Save(_ context.Context, name string, r io.Reader) (string, error) {
	if name == "" {
		return "", &domain.StorageError{Op: "write", Err: errors.New("empty file name")}
	}

	path := filepath.Join(s.dir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", &domain.StorageError{Op: "write", Path: path, Err: err}
	}

	written, err := io.Copy(out, r)
	if err != nil {
		out.Close()
		return "", &domain.StorageError{Op: "write", Path: path, Err: err}
	}

	if err := out.Close(); err != nil {
		return "", &domain.StorageError{Op: "write", Path: path, Err: err}
	}

	s.logger.Debug("Stored uploaded clip",
		zap.String("path", path),
		zap.Int64("bytes", written))

	return path, nil
}

// Read implements repositories.AudioStore
func (s *LocalAudioStore) Read(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.StorageError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}
