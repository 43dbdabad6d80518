package domain

import "fmt"

// ConfigurationError is returned when the process cannot start because a
// required setting is missing or invalid.
type ConfigurationError struct {
	Key     string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Key, e.Message)
}

// StorageError wraps a failure to write or re-read an uploaded clip.
type StorageError struct {
	Op   string // "write" or "read"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %s failed: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// BackendError carries a failure reported by the recognition backend or the
// transport in front of it. Message is the backend's own message.
type BackendError struct {
	Code    string
	Message string
	Err     error
}

func (e *BackendError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
