// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrInvalidAddress   = errors.New("invalid wallet address")
	ErrRateLimited      = errors.New("rate limited")
	ErrTimeout          = errors.New("operation timed out")
	ErrProviderFailure  = errors.New("provider request failed")
	ErrJournalNotFound  = errors.New("journal file not found")
	ErrCorruptJournal   = errors.New("journal file corrupted")
	ErrTradeNotFound    = errors.New("trade not found")
	ErrDuplicateTradeID = errors.New("duplicate trade id")
	ErrUnknownCategory  = errors.New("unknown tag category")
	ErrInputValidation  = errors.New("input validation failed")
	ErrNoWallet         = errors.New("no wallet connected")
)

// ProviderKind classifies a trade-data provider failure.
type ProviderKind string

const (
	ProviderInvalidAddress ProviderKind = "INVALID_ADDRESS"
	ProviderRateLimited    ProviderKind = "RATE_LIMITED"
	ProviderTimeout        ProviderKind = "TIMEOUT"
	ProviderUnknown        ProviderKind = "UNKNOWN"
)

// ProviderError represents a failure from the trade-data provider.
// It unwraps to the sentinel matching its kind so callers can use
// errors.Is without inspecting the struct.
type ProviderError struct {
	Kind    ProviderKind
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider error [%s]: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("provider error [%s]: %s", e.Kind, e.Message)
}

func (e *ProviderError) Unwrap() error {
	switch e.Kind {
	case ProviderInvalidAddress:
		return ErrInvalidAddress
	case ProviderRateLimited:
		return ErrRateLimited
	case ProviderTimeout:
		return ErrTimeout
	}
	if e.Err != nil {
		return e.Err
	}
	return ErrProviderFailure
}

// UserMessage returns a human-readable description for display.
func (e *ProviderError) UserMessage() string {
	switch e.Kind {
	case ProviderInvalidAddress:
		return "Invalid wallet address format. Please check your address."
	case ProviderRateLimited:
		return "Rate limited by the Hyperliquid API. Please wait a moment and try again."
	case ProviderTimeout:
		return "Connection timeout. Please check your internet connection and try again."
	}
	return fmt.Sprintf("Failed to fetch data from Hyperliquid: %s", e.Message)
}

// NewProviderError creates a new ProviderError.
func NewProviderError(kind ProviderKind, message string, err error) *ProviderError {
	return &ProviderError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInputValidation
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
