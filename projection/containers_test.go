package projection

import (
	"testing"

	"github.com/go-sif/prune"
	"github.com/go-sif/prune/errors"
	"github.com/go-sif/prune/requested"
	"github.com/stretchr/testify/require"
)

func TestListUnchanged(t *testing.T) {
	list := prune.OptionalListOf(7, prune.StringType{})
	res, err := ProjectType(list, requested.ArrayOf(requested.StringType{}, true), nil)
	require.Nil(t, err)
	require.True(t, res == prune.Type(list))
}

func TestListRequiredElementsAsNullable(t *testing.T) {
	list := prune.RequiredListOf(7, prune.StringType{})
	res, err := ProjectType(list, requested.ArrayOf(requested.StringType{}, true), nil)
	require.Nil(t, err)
	require.True(t, res == prune.Type(list))
}

func TestListOptionalElementsAsRequired(t *testing.T) {
	list := prune.OptionalListOf(7, prune.StringType{})
	_, err := ProjectType(list, requested.ArrayOf(requested.StringType{}, false), nil)
	var nullErr errors.NullabilityError
	require.ErrorAs(t, err, &nullErr)
	require.Equal(t, errors.ElementPosition, nullErr.Position)
}

func TestListRebuiltOnElementChange(t *testing.T) {
	list := prune.RequiredListOf(14, prune.StructOf(
		prune.RequiredField(15, "x", prune.LongType{}),
		prune.RequiredField(16, "y", prune.LongType{}),
	))
	req := requested.ArrayOf(requested.StructOf(
		requested.StructField{Name: "y", Type: requested.LongType{}, Nullable: false},
	), false)
	res, err := ProjectType(list, req, nil)
	require.Nil(t, err)
	projected, ok := res.(*prune.ListType)
	require.True(t, ok)
	require.False(t, projected == list)
	require.Equal(t, 14, projected.ElementID)
	require.False(t, projected.ElementOptional)
	require.Equal(t, "struct<16: y: required long>", projected.ElementType.String())
}

func TestListShapeMismatch(t *testing.T) {
	list := prune.OptionalListOf(7, prune.StringType{})
	_, err := ProjectType(list, requested.MapOf(requested.StringType{}, requested.StringType{}, true), nil)
	var shapeErr errors.ShapeMismatchError
	require.ErrorAs(t, err, &shapeErr)
	require.Equal(t, "array", shapeErr.Expected)
}

func TestMapUnchanged(t *testing.T) {
	m := prune.OptionalMapOf(9, 10, prune.StringType{}, prune.IntegerType{})
	res, err := ProjectType(m, requested.MapOf(requested.StringType{}, requested.IntegerType{}, true), nil)
	require.Nil(t, err)
	require.True(t, res == prune.Type(m))
}

func TestMapInvalidKey(t *testing.T) {
	m := prune.OptionalMapOf(9, 10, prune.StringType{}, prune.IntegerType{})
	_, err := ProjectType(m, requested.MapOf(requested.IntegerType{}, requested.IntegerType{}, true), nil)
	var keyErr errors.InvalidMapKeyError
	require.ErrorAs(t, err, &keyErr)
	require.Equal(t, "int", keyErr.KeyType)
}

func TestMapOptionalValuesAsRequired(t *testing.T) {
	m := prune.OptionalMapOf(9, 10, prune.StringType{}, prune.IntegerType{})
	_, err := ProjectType(m, requested.MapOf(requested.StringType{}, requested.IntegerType{}, false), nil)
	var nullErr errors.NullabilityError
	require.ErrorAs(t, err, &nullErr)
	require.Equal(t, errors.ValuePosition, nullErr.Position)
}

func TestMapRebuiltOnValueChange(t *testing.T) {
	m := prune.RequiredMapOf(9, 10, prune.StringType{}, prune.StructOf(
		prune.OptionalField(11, "a", prune.StringType{}),
		prune.OptionalField(12, "b", prune.StringType{}),
	))
	req := requested.MapOf(requested.StringType{}, requested.StructOf(
		requested.StructField{Name: "b", Type: requested.StringType{}, Nullable: true},
	), true)
	res, err := ProjectType(m, req, nil)
	require.Nil(t, err)
	projected, ok := res.(*prune.MapType)
	require.True(t, ok)
	require.False(t, projected == m)
	require.Equal(t, 9, projected.KeyID)
	require.Equal(t, 10, projected.ValueID)
	require.False(t, projected.ValueOptional)
	require.Equal(t, "struct<12: b: optional string>", projected.ValueType.String())
}

func TestMapShapeMismatch(t *testing.T) {
	m := prune.OptionalMapOf(9, 10, prune.StringType{}, prune.IntegerType{})
	_, err := ProjectType(m, requested.StringType{}, nil)
	var shapeErr errors.ShapeMismatchError
	require.ErrorAs(t, err, &shapeErr)
	require.Equal(t, "map", shapeErr.Expected)
}
