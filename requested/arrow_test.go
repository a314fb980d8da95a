package requested

import (
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/stretchr/testify/require"
)

func TestFromArrowSchema(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64, Nullable: false},
		{Name: "name", Type: arrow.BinaryTypes.String, Nullable: true},
		{Name: "price", Type: &arrow.Decimal128Type{Precision: 12, Scale: 2}, Nullable: true},
		{Name: "ts", Type: &arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: "UTC"}, Nullable: true},
		{Name: "local_ts", Type: &arrow.TimestampType{Unit: arrow.Microsecond}, Nullable: true},
		{Name: "tags", Type: arrow.ListOfNonNullable(arrow.BinaryTypes.String), Nullable: true},
		{Name: "props", Type: arrow.MapOf(arrow.BinaryTypes.String, arrow.PrimitiveTypes.Int32), Nullable: true},
		{Name: "location", Type: arrow.StructOf(
			arrow.Field{Name: "lat", Type: arrow.PrimitiveTypes.Float64},
		), Nullable: true},
	}, nil)

	st, err := FromArrowSchema(schema)
	require.Nil(t, err)
	require.Equal(t, "struct<id:bigint not null,name:string,price:decimal(12,2),ts:timestamp,local_ts:timestamp_ntz,"+
		"tags:array<string not null>,props:map<string,int>,location:struct<lat:double not null>>", st.String())
}

func TestFromArrowTypeUnsupported(t *testing.T) {
	_, err := FromArrowType(arrow.FixedWidthTypes.Duration_s)
	require.NotNil(t, err)

	_, err = FromArrowSchema(nil)
	require.NotNil(t, err)
}
