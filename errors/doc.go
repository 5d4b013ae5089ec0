// Package errors provides standardized error handling patterns for Physical.
//
// # Overview
//
// The errors package implements a two-class error classification system for a
// dimensional-analysis library: Invalid (bad operands, recoverable, handled by
// the caller) and Fatal (unrecoverable, stops registry initialization).
//
// Every failure the core can detect has a standard error variable:
//
//   - Registry: ErrUnknownUnit, ErrDuplicateUnitName, ErrRegistryFrozen
//   - Dimensions: ErrIncommensurableDimensions
//   - Unit algebra: ErrIncompatibleAffineComposition
//   - Numerics: ErrDivisionByZero, ErrUndefinedPower
//   - Quantities: ErrArrayLengthMismatch
//   - Catalogs: ErrInvalidCatalog
//
// Operations never panic on these conditions and never substitute sentinel
// magnitudes; every error is an explicit return value so that expressions
// built from many sub-operations short-circuit predictably.
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Two wrapper functions provide classification-aware wrapping:
//
//	errors.WrapInvalid(err, "Quantity", "Add", "dimension check")
//	errors.WrapFatal(err, "Registry", "Register", "unit registration")
//
// The chain remains compatible with errors.Is and errors.As throughout:
//
//	if errors.Is(err, errors.ErrIncommensurableDimensions) {
//	    // expected runtime check, not a bug
//	}
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error variables
// are immutable and safe for concurrent access.
package errors
