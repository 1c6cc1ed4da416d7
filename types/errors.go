package types

import (
	"errors"
	"fmt"
)

// ErrNotTerminal is returned when the interactive session is started
// without a terminal attached to stdin.
var ErrNotTerminal = errors.New("standard input is not a terminal; use --goal for non-interactive runs")

// ConfigError reports a missing or invalid configuration value. It is
// fatal and raised before any oracle call is attempted.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Key, e.Reason)
}

// NewConfigError creates a structured configuration error.
func NewConfigError(key, reason string) *ConfigError {
	return &ConfigError{Key: key, Reason: reason}
}
