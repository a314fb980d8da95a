package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	inner := IncompatibleTypeError{Canonical: "double", Requested: "float"}
	err := &FieldError{Field: "location", Err: &FieldError{Field: "lat", Err: inner}}
	require.Equal(t, "location.lat", Path(err))
	require.Equal(t, "", Path(inner))
	require.Equal(t, "location.lat", Path(fmt.Errorf("request 3: %w", err)))
}

func TestIsInvalidProjection(t *testing.T) {
	for _, err := range []error{
		ShapeMismatchError{Expected: "struct", Actual: "int"},
		NullabilityError{Field: "a"},
		IncompatibleTypeError{Canonical: "long", Requested: "int"},
		InvalidMapKeyError{KeyType: "int"},
		MissingFieldError{Field: "a"},
		DuplicateFieldError{Field: "a"},
		&FieldError{Field: "a", Err: fmt.Errorf("boom")},
		fmt.Errorf("wrapped: %w", MissingFieldError{Field: "a"}),
	} {
		require.True(t, IsInvalidProjection(err), err.Error())
	}
	require.False(t, IsInvalidProjection(fmt.Errorf("boom")))
	require.False(t, IsInvalidProjection(nil))
}

func TestMessages(t *testing.T) {
	require.Equal(t, "Cannot project an array of optional elements as required elements: array<string not null>",
		NullabilityError{Field: "array<string not null>", Position: ElementPosition}.Error())
	require.Equal(t, "Cannot project a map of optional values as required values: map<string,int not null>",
		NullabilityError{Field: "map<string,int not null>", Position: ValuePosition}.Error())
	require.Equal(t, "Cannot project decimal(10, 2) as decimal(10,3): incompatible scale: 3 != 2",
		IncompatibleTypeError{Canonical: "decimal(10, 2)", Requested: "decimal(10,3)", Reason: "incompatible scale: 3 != 2"}.Error())
	require.Equal(t, "Requested field appears more than once: id", DuplicateFieldError{Field: "id"}.Error())
}
