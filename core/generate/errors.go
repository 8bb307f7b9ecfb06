// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package generate

import (
	"errors"
	"fmt"
)

// Sentinel errors. Configuration problems are wrapped in *ConfigurationError,
// bounded loops that give up are reported as *RetryExhaustedError.
var (
	ErrEmptyCharset   = errors.New("no characters available for generation")
	ErrInvalidLength  = errors.New("length out of range")
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrInvalidMode    = errors.New("unknown generation mode")
	ErrInvalidSymbols = errors.New("custom symbols must not contain letters or digits")
	ErrRetryExhausted = errors.New("retry limit exhausted")
)

// ConfigurationError reports settings that can never produce a password.
// It is fatal: retrying with the same settings fails the same way.
type ConfigurationError struct {
	Field  string
	Detail string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid generation settings: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid generation settings: %s: %v (%s)", e.Field, e.Err, e.Detail)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Stage names the bounded loop that gave up.
type Stage string

const (
	StageFilter  Stage = "filter"
	StageEntropy Stage = "entropy"
)

// RetryExhaustedError is recoverable: relaxing the constraints (fewer
// excluded words, a lower minimum entropy) lets the next call succeed.
type RetryExhaustedError struct {
	Stage    Stage
	Attempts int
	// Reason describes the last rejection.
	Reason string
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("%s stage gave up after %d attempts: %s", e.Stage, e.Attempts, e.Reason)
}

func (e *RetryExhaustedError) Unwrap() error { return ErrRetryExhausted }

// IsConfigurationError reports whether err stems from invalid settings.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

func configErr(field string, err error, format string, args ...any) error {
	return &ConfigurationError{Field: field, Err: err, Detail: fmt.Sprintf(format, args...)}
}
