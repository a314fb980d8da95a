package schema

import (
	"testing"

	"github.com/go-sif/prune"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestCreateSchemaIndexesNestedIDs(t *testing.T) {
	s, err := CreateSchema(
		prune.RequiredField(1, "id", prune.LongType{}),
		prune.OptionalField(2, "location", prune.StructOf(
			prune.RequiredField(3, "lat", prune.DoubleType{}),
		)),
		prune.OptionalField(4, "tags", prune.OptionalListOf(5, prune.StringType{})),
		prune.OptionalField(6, "props", prune.RequiredMapOf(7, 8, prune.StringType{}, prune.IntegerType{})),
	)
	require.Nil(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, s.FieldIDs())

	lat, ok := s.FindFieldByName("location.lat")
	require.True(t, ok)
	require.Equal(t, 3, lat.ID)

	element, ok := s.FindField(5)
	require.True(t, ok)
	require.Equal(t, "element", element.Name)
	require.True(t, element.Optional)

	value, ok := s.FindFieldByName("props.value")
	require.True(t, ok)
	require.Equal(t, 8, value.ID)
	require.False(t, value.Optional)

	_, ok = s.FindField(99)
	require.False(t, ok)
	require.Len(t, s.Columns(), 4)
}

func TestCreateSchemaRejectsInvalidSchemas(t *testing.T) {
	_, err := CreateSchema(
		prune.RequiredField(1, "id", prune.LongType{}),
		prune.RequiredField(1, "other", prune.LongType{}),
		prune.OptionalField(2, "props", prune.OptionalMapOf(3, 4, prune.IntegerType{}, prune.StringType{})),
		prune.OptionalField(5, "id", prune.StringType{}),
	)
	require.NotNil(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 3)
}

func TestFromStructNil(t *testing.T) {
	_, err := FromStruct(nil)
	require.NotNil(t, err)
}

func TestSchemaString(t *testing.T) {
	s, err := CreateSchema(
		prune.RequiredField(1, "id", prune.LongType{}),
		prune.OptionalField(2, "tags", prune.RequiredListOf(3, prune.StringType{})),
	)
	require.Nil(t, err)
	require.Equal(t, "table {\n  1: id: required long\n  2: tags: optional list<3: required string>\n}", s.String())
}
