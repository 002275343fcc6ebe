package domain

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when no completion API key was supplied.
var ErrMissingAPIKey = errors.New("completion API key is not configured")

// ConfigurationError is a fatal configuration problem detected before any network call.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error (%s): %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// UnsupportedLanguageError rejects a source file whose language cannot be handled.
type UnsupportedLanguageError struct {
	Path     string
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	if e.Language != "" {
		return fmt.Sprintf("unsupported language %q for %s: supported languages are JavaScript, TypeScript, Python and Java", e.Language, e.Path)
	}
	return fmt.Sprintf("unsupported file type %s: supported languages are JavaScript, TypeScript, Python and Java", e.Path)
}

// ExternalServiceError is a failed completion call. Message holds the remote
// error message when the service returned one, otherwise the transport error text.
type ExternalServiceError struct {
	Stage      string
	StatusCode int
	Message    string
	Err        error
}

func (e *ExternalServiceError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("%s: %s", e.Stage, e.Message)
	}
	return e.Message
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// DirectoryCreationError is non-fatal: the caller falls back to the source directory.
type DirectoryCreationError struct {
	Dir string
	Err error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("failed to create test directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryCreationError) Unwrap() error {
	return e.Err
}
