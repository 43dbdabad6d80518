package repositories

import (
	"context"
	"io"
)

// AudioStore persists uploaded clips so they can be re-read for recognition
type AudioStore interface {
	// Save writes everything from r under name and returns the resolved path
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	// Read returns the full content stored at path
	Read(ctx context.Context, path string) ([]byte, error)
}
