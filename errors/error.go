package errors

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidProjectionError is implemented by every error produced while
// projecting a schema. These errors are deterministic: retrying a projection
// with the same inputs always fails the same way.
type InvalidProjectionError interface {
	error
	InvalidProjection()
}

// IsInvalidProjection returns true iff err, or any error it wraps, is an InvalidProjectionError
func IsInvalidProjection(err error) bool {
	var target InvalidProjectionError
	return errors.As(err, &target)
}

// ShapeMismatchError occurs when a requested type is a different kind of node than the canonical type at the same position
type ShapeMismatchError struct {
	Expected string // Expected is the kind of requested node the canonical type needs, e.g. "struct"
	Actual   string // Actual is the requested type found instead
}

// Error returns a textual representation of this ShapeMismatchError
func (e ShapeMismatchError) Error() string {
	return fmt.Sprintf("Not a %s: %s", e.Expected, e.Actual)
}

// InvalidProjection marks ShapeMismatchError as an InvalidProjectionError
func (e ShapeMismatchError) InvalidProjection() {}

// NullabilityPosition describes where a NullabilityError occurred
type NullabilityPosition int

const (
	// FieldPosition is a struct field
	FieldPosition NullabilityPosition = iota
	// ElementPosition is a list element
	ElementPosition
	// ValuePosition is a map value
	ValuePosition
)

// NullabilityError occurs when a canonical optional field, list element or map value is requested as non-nullable
type NullabilityError struct {
	Field    string // Field is the field name, or the requested container type for elements and values
	Position NullabilityPosition
}

// Error returns a textual representation of this NullabilityError
func (e NullabilityError) Error() string {
	switch e.Position {
	case ElementPosition:
		return fmt.Sprintf("Cannot project an array of optional elements as required elements: %s", e.Field)
	case ValuePosition:
		return fmt.Sprintf("Cannot project a map of optional values as required values: %s", e.Field)
	default:
		return fmt.Sprintf("Cannot project an optional field as non-null: %s", e.Field)
	}
}

// InvalidProjection marks NullabilityError as an InvalidProjectionError
func (e NullabilityError) InvalidProjection() {}

// IncompatibleTypeError occurs when a requested primitive cannot represent a canonical primitive
type IncompatibleTypeError struct {
	Canonical string
	Requested string
	Reason    string // Reason is set when the kinds match but a refinement rule failed
}

// Error returns a textual representation of this IncompatibleTypeError
func (e IncompatibleTypeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("Cannot project %s as %s: %s", e.Canonical, e.Requested, e.Reason)
	}
	return fmt.Sprintf("Cannot project %s to incompatible type: %s", e.Canonical, e.Requested)
}

// InvalidProjection marks IncompatibleTypeError as an InvalidProjectionError
func (e IncompatibleTypeError) InvalidProjection() {}

// InvalidMapKeyError occurs when a requested map key type is not a string
type InvalidMapKeyError struct {
	KeyType string
}

// Error returns a textual representation of this InvalidMapKeyError
func (e InvalidMapKeyError) Error() string {
	return fmt.Sprintf("Invalid map key type (not string): %s", e.KeyType)
}

// InvalidProjection marks InvalidMapKeyError as an InvalidProjectionError
func (e InvalidMapKeyError) InvalidProjection() {}

// MissingFieldError occurs when a requested field name does not exist in the canonical struct
type MissingFieldError struct {
	Field string
}

// Error returns a textual representation of this MissingFieldError
func (e MissingFieldError) Error() string {
	return fmt.Sprintf("Requested field does not exist in schema: %s", e.Field)
}

// InvalidProjection marks MissingFieldError as an InvalidProjectionError
func (e MissingFieldError) InvalidProjection() {}

// DuplicateFieldError occurs when a requested struct names the same field more than once
type DuplicateFieldError struct {
	Field string
}

// Error returns a textual representation of this DuplicateFieldError
func (e DuplicateFieldError) Error() string {
	return fmt.Sprintf("Requested field appears more than once: %s", e.Field)
}

// InvalidProjection marks DuplicateFieldError as an InvalidProjectionError
func (e DuplicateFieldError) InvalidProjection() {}

// FieldError annotates an error raised while projecting the type of a field with that field's name
type FieldError struct {
	Field string
	Err   error
}

// Error returns a textual representation of this FieldError
func (e *FieldError) Error() string {
	return fmt.Sprintf("Invalid projection for field %s: %s", e.Field, e.Err)
}

// Unwrap returns the annotated error
func (e *FieldError) Unwrap() error {
	return e.Err
}

// InvalidProjection marks FieldError as an InvalidProjectionError
func (e *FieldError) InvalidProjection() {}

// Path returns the dotted path of the fields which annotated err, outermost
// first. It is empty when err carries no FieldError.
func Path(err error) string {
	var segments []string
	for {
		var fe *FieldError
		if !errors.As(err, &fe) {
			break
		}
		segments = append(segments, fe.Field)
		err = fe.Err
	}
	return strings.Join(segments, ".")
}
