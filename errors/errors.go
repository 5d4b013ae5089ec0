// Package errors provides standardized error handling patterns for Physical.
// It includes error classification, standard error variables, and helper
// functions for consistent error wrapping across the library.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorInvalid represents recoverable errors due to invalid operands or
	// operations; callers are expected to inspect and handle these.
	ErrorInvalid ErrorClass = iota
	// ErrorFatal represents unrecoverable errors, such as registry
	// population failures during initialization.
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Registry errors
	ErrUnknownUnit       = errors.New("unknown unit")
	ErrDuplicateUnitName = errors.New("duplicate unit name")
	ErrRegistryFrozen    = errors.New("registry is frozen")

	// Dimension errors
	ErrIncommensurableDimensions = errors.New("incommensurable dimensions")

	// Unit algebra errors
	ErrIncompatibleAffineComposition = errors.New("incompatible affine composition")

	// Numeric errors
	ErrDivisionByZero = errors.New("division by zero")
	ErrUndefinedPower = errors.New("undefined power")

	// Quantity errors
	ErrArrayLengthMismatch = errors.New("array length mismatch")

	// Catalog errors
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsFatal checks if an error is fatal and should stop initialization
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	// Check for classified error
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	// Registry population errors are fatal because the registry is frozen
	// after initialization and cannot be repaired at runtime.
	return errors.Is(err, ErrDuplicateUnitName) ||
		errors.Is(err, ErrRegistryFrozen) ||
		errors.Is(err, ErrInvalidCatalog)
}

// IsInvalid checks if an error is a recoverable operand error
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	// Check for classified error
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	return errors.Is(err, ErrUnknownUnit) ||
		errors.Is(err, ErrIncommensurableDimensions) ||
		errors.Is(err, ErrIncompatibleAffineComposition) ||
		errors.Is(err, ErrDivisionByZero) ||
		errors.Is(err, ErrUndefinedPower) ||
		errors.Is(err, ErrArrayLengthMismatch)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if err == nil {
		return ErrorInvalid // Default for nil
	}

	if IsFatal(err) {
		return ErrorFatal
	}
	return ErrorInvalid
}

// newClassified creates a new classified error
// This is an internal helper - use WrapInvalid() or WrapFatal() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}
