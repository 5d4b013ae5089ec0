package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"duplicate unit name", ErrDuplicateUnitName, true},
		{"registry frozen", ErrRegistryFrozen, true},
		{"invalid catalog", ErrInvalidCatalog, true},
		{"unknown unit", ErrUnknownUnit, false},
		{"incommensurable dimensions", ErrIncommensurableDimensions, false},
		{"division by zero", ErrDivisionByZero, false},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsFatal(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"unknown unit", ErrUnknownUnit, true},
		{"incommensurable dimensions", ErrIncommensurableDimensions, true},
		{"affine composition", ErrIncompatibleAffineComposition, true},
		{"division by zero", ErrDivisionByZero, true},
		{"undefined power", ErrUndefinedPower, true},
		{"array length mismatch", ErrArrayLengthMismatch, true},
		{"duplicate unit name", ErrDuplicateUnitName, false},
		{"unrelated error", fmt.Errorf("something else"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := ErrIncommensurableDimensions
	wrapped := Wrap(base, "Quantity", "Add", "dimension check")

	expected := "Quantity.Add: dimension check failed: incommensurable dimensions"
	if wrapped.Error() != expected {
		t.Errorf("expected %q, got %q", expected, wrapped.Error())
	}

	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should match the original via errors.Is")
	}

	if Wrap(nil, "Quantity", "Add", "dimension check") != nil {
		t.Error("wrapping nil should return nil")
	}
}

func TestWrapInvalid_PreservesChain(t *testing.T) {
	wrapped := WrapInvalid(ErrUnknownUnit, "Registry", "Lookup", "name resolution")

	if !errors.Is(wrapped, ErrUnknownUnit) {
		t.Error("classified error should match the original via errors.Is")
	}

	var ce *ClassifiedError
	if !errors.As(wrapped, &ce) {
		t.Fatal("expected a ClassifiedError in the chain")
	}
	if ce.Class != ErrorInvalid {
		t.Errorf("expected class invalid, got %s", ce.Class)
	}
	if ce.Component != "Registry" || ce.Operation != "Lookup" {
		t.Errorf("unexpected context: %s.%s", ce.Component, ce.Operation)
	}
}

func TestWrapFatal_PreservesChain(t *testing.T) {
	wrapped := WrapFatal(ErrDuplicateUnitName, "Registry", "Register", "unit registration")

	if !IsFatal(wrapped) {
		t.Error("expected fatal classification")
	}
	if !errors.Is(wrapped, ErrDuplicateUnitName) {
		t.Error("classified error should match the original via errors.Is")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"nil", nil, ErrorInvalid},
		{"fatal sentinel", ErrDuplicateUnitName, ErrorFatal},
		{"invalid sentinel", ErrUndefinedPower, ErrorInvalid},
		{"unknown error", fmt.Errorf("mystery"), ErrorInvalid},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Classify(test.err); got != test.expected {
				t.Errorf("expected %s, got %s", test.expected, got)
			}
		})
	}
}
