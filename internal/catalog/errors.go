package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrPluginNotFound is returned when no plugin carries the requested id
	ErrPluginNotFound = errors.New("plugin not found")
	// ErrNoRepository is returned when a plugin has no repository link
	ErrNoRepository = errors.New("plugin has no repository link")
	// ErrInvalidRepository is returned when a repository link cannot be resolved to a URL
	ErrInvalidRepository = errors.New("invalid repository link")
)

// FetchError represents a failed request to the plugin source.
// StatusCode is 0 when the request never produced a response.
type FetchError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return e.Message
	}
	return fmt.Sprintf("HTTP Error: %d - %s", e.StatusCode, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError represents a malformed envelope or payload.
// Stage names the decode step that failed: "envelope", "base64" or "json".
type ParseError struct {
	Stage string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse plugin data (%s): %v", e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
