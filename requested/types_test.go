package requested

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructOfIndexesFirstOccurrence(t *testing.T) {
	st := StructOf(
		StructField{Name: "a", Type: IntegerType{}, Nullable: true},
		StructField{Name: "b", Type: StringType{}, Nullable: false},
	)
	idx, ok := st.FieldIndex("b")
	require.True(t, ok)
	require.Equal(t, 1, idx)
	_, ok = st.Field("c")
	require.False(t, ok)
	require.Equal(t, "struct<a:int,b:string not null>", st.String())
}

func TestTypeNames(t *testing.T) {
	require.Equal(t, "timestamp", TimestampType{}.TypeName())
	require.Equal(t, "timestamp_ntz", TimestampNTZType{}.TypeName())
	require.Equal(t, "decimal", DecimalType{Precision: 3, Scale: 1}.TypeName())
	require.Equal(t, "decimal(3,1)", DecimalType{Precision: 3, Scale: 1}.String())
	require.Equal(t, "array", ArrayOf(LongType{}, true).TypeName())
	require.Equal(t, "map<string,bigint not null>", MapOf(StringType{}, LongType{}, false).String())
}
