package services

import "fmt"

// ValidationError is a client input fault: the conversation is malformed or
// does not end on a user turn.
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// ConfigError is a deployment fault, such as a missing provider credential.
type ConfigError struct{ Message string }

func (e *ConfigError) Error() string { return e.Message }

// UpstreamError wraps any failure of the provider call. Err is for server
// logs only.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s upstream: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
