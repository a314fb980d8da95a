package projection

import (
	"testing"

	"github.com/go-sif/prune"
	"github.com/go-sif/prune/errors"
	"github.com/go-sif/prune/requested"
	"github.com/stretchr/testify/require"
)

func TestCompatibilityTable(t *testing.T) {
	cases := []struct {
		canonical prune.PrimitiveType
		ok        []requested.DataType
		notOK     []requested.DataType
	}{
		{prune.BooleanType{}, []requested.DataType{requested.BooleanType{}}, []requested.DataType{requested.IntegerType{}}},
		{prune.IntegerType{}, []requested.DataType{requested.IntegerType{}}, []requested.DataType{requested.LongType{}, requested.ShortType{}}},
		{prune.LongType{}, []requested.DataType{requested.LongType{}}, []requested.DataType{requested.IntegerType{}}},
		{prune.FloatType{}, []requested.DataType{requested.FloatType{}}, []requested.DataType{requested.DoubleType{}}},
		{prune.DoubleType{}, []requested.DataType{requested.DoubleType{}}, []requested.DataType{requested.FloatType{}}},
		{prune.DateType{}, []requested.DataType{requested.DateType{}}, []requested.DataType{requested.TimestampType{}}},
		{prune.UUIDType{}, []requested.DataType{requested.StringType{}, requested.BinaryType{}}, []requested.DataType{requested.LongType{}}},
		{prune.StringType{}, []requested.DataType{requested.StringType{}}, []requested.DataType{requested.BinaryType{}}},
		{prune.FixedType{Length: 16}, []requested.DataType{requested.BinaryType{}}, []requested.DataType{requested.StringType{}}},
		{prune.BinaryType{}, []requested.DataType{requested.BinaryType{}}, []requested.DataType{requested.StringType{}}},
	}
	for _, c := range cases {
		for _, req := range c.ok {
			res, err := projectPrimitive(c.canonical, req)
			require.Nil(t, err, "%s as %s", c.canonical, req)
			require.Equal(t, c.canonical, res)
		}
		for _, req := range c.notOK {
			_, err := projectPrimitive(c.canonical, req)
			var incompatible errors.IncompatibleTypeError
			require.ErrorAs(t, err, &incompatible, "%s as %s", c.canonical, req)
			require.Equal(t, c.canonical.String(), incompatible.Canonical)
			require.Equal(t, req.String(), incompatible.Requested)
		}
	}
}

func TestPrimitiveAgainstContainer(t *testing.T) {
	_, err := projectPrimitive(prune.StringType{}, requested.ArrayOf(requested.StringType{}, true))
	require.NotNil(t, err)
	require.True(t, errors.IsInvalidProjection(err))
	_, err = projectPrimitive(prune.StringType{}, nil)
	require.NotNil(t, err)
}

func TestDecimalProjection(t *testing.T) {
	canonical := prune.DecimalType{Precision: 10, Scale: 2}

	res, err := projectPrimitive(canonical, requested.DecimalType{Precision: 10, Scale: 2})
	require.Nil(t, err)
	require.Equal(t, canonical, res)

	// widening precision is allowed and changes nothing
	res, err = projectPrimitive(canonical, requested.DecimalType{Precision: 12, Scale: 2})
	require.Nil(t, err)
	require.True(t, res == prune.Type(canonical))

	_, err = projectPrimitive(canonical, requested.DecimalType{Precision: 10, Scale: 3})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "incompatible scale: 3 != 2")

	_, err = projectPrimitive(canonical, requested.DecimalType{Precision: 9, Scale: 2})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "incompatible precision: 9 < 10")
}

func TestTimestampProjection(t *testing.T) {
	withZone := prune.TimestampType{AdjustToUTC: true}
	withoutZone := prune.TimestampType{AdjustToUTC: false}

	_, err := projectPrimitive(withZone, requested.TimestampType{})
	require.Nil(t, err)
	_, err = projectPrimitive(withoutZone, requested.TimestampNTZType{})
	require.Nil(t, err)

	_, err = projectPrimitive(withZone, requested.TimestampNTZType{})
	var incompatible errors.IncompatibleTypeError
	require.ErrorAs(t, err, &incompatible)
	require.NotEmpty(t, incompatible.Reason)

	_, err = projectPrimitive(withoutZone, requested.TimestampType{})
	require.ErrorAs(t, err, &incompatible)
	require.NotEmpty(t, incompatible.Reason)
}

func TestIsCompatible(t *testing.T) {
	require.True(t, IsCompatible(prune.TimestampID, requested.TimestampNTZType{}))
	require.False(t, IsCompatible(prune.StructID, requested.StructOf()))
	require.False(t, IsCompatible(prune.LongID, nil))
}
