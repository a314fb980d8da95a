package requested

import (
	"fmt"
	"strings"
)

// DataType is implemented by every node of a requested schema. The set of
// implementations is closed: *StructType, *ArrayType, *MapType and the leaf
// types declared in this package.
type DataType interface {
	// TypeName returns the name of this kind of DataType, e.g. "struct" or "decimal"
	TypeName() string
	// String returns a full textual representation of this DataType, e.g. struct<a:int>
	String() string
	isDataType()
}

// StructField is a named member of a requested StructType
type StructField struct {
	Name     string
	Type     DataType
	Nullable bool
}

// String returns name:type, with a "not null" suffix for non-nullable fields
func (f StructField) String() string {
	if f.Nullable {
		return fmt.Sprintf("%s:%s", f.Name, f.Type)
	}
	return fmt.Sprintf("%s:%s not null", f.Name, f.Type)
}

// StructType is an ordered sequence of named fields. Order is significant:
// it dictates the field order of a projected schema.
type StructType struct {
	fields []StructField
	index  map[string]int
}

// StructOf is a factory for StructTypes. Field names are indexed once, here.
func StructOf(fields ...StructField) *StructType {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, ok := index[f.Name]; !ok {
			index[f.Name] = i
		}
	}
	return &StructType{fields: fields, index: index}
}

// TypeName returns "struct"
func (s *StructType) TypeName() string { return "struct" }
func (s *StructType) isDataType()      {}

// Fields returns the fields of this StructType in order. The returned slice
// must not be modified.
func (s *StructType) Fields() []StructField {
	return s.fields
}

// FieldIndex returns the position of the field with the given name
func (s *StructType) FieldIndex(name string) (int, bool) {
	idx, ok := s.index[name]
	return idx, ok
}

// Field returns the field with the given name
func (s *StructType) Field(name string) (StructField, bool) {
	idx, ok := s.index[name]
	if !ok {
		return StructField{}, false
	}
	return s.fields[idx], true
}

// String returns struct<...>
func (s *StructType) String() string {
	var res strings.Builder
	res.WriteString("struct<")
	for i, f := range s.fields {
		if i > 0 {
			res.WriteString(",")
		}
		res.WriteString(f.String())
	}
	res.WriteString(">")
	return res.String()
}

// ArrayType is a sequence of elements of a single type
type ArrayType struct {
	ElementType  DataType
	ContainsNull bool
}

// ArrayOf is a factory for ArrayTypes
func ArrayOf(elementType DataType, containsNull bool) *ArrayType {
	return &ArrayType{ElementType: elementType, ContainsNull: containsNull}
}

// TypeName returns "array"
func (a *ArrayType) TypeName() string { return "array" }
func (a *ArrayType) isDataType()      {}

// String returns array<...>
func (a *ArrayType) String() string {
	if a.ContainsNull {
		return fmt.Sprintf("array<%s>", a.ElementType)
	}
	return fmt.Sprintf("array<%s not null>", a.ElementType)
}

// MapType associates keys of one type with values of another
type MapType struct {
	KeyType           DataType
	ValueType         DataType
	ValueContainsNull bool
}

// MapOf is a factory for MapTypes
func MapOf(keyType DataType, valueType DataType, valueContainsNull bool) *MapType {
	return &MapType{KeyType: keyType, ValueType: valueType, ValueContainsNull: valueContainsNull}
}

// TypeName returns "map"
func (m *MapType) TypeName() string { return "map" }
func (m *MapType) isDataType()      {}

// String returns map<...>
func (m *MapType) String() string {
	if m.ValueContainsNull {
		return fmt.Sprintf("map<%s,%s>", m.KeyType, m.ValueType)
	}
	return fmt.Sprintf("map<%s,%s not null>", m.KeyType, m.ValueType)
}

// BooleanType is a true/false value
type BooleanType struct{}

// TypeName returns "boolean"
func (BooleanType) TypeName() string { return "boolean" }
func (BooleanType) String() string   { return "boolean" }
func (BooleanType) isDataType()      {}

// ByteType is an 8-bit signed integer
type ByteType struct{}

// TypeName returns "byte"
func (ByteType) TypeName() string { return "byte" }
func (ByteType) String() string   { return "byte" }
func (ByteType) isDataType()      {}

// ShortType is a 16-bit signed integer
type ShortType struct{}

// TypeName returns "short"
func (ShortType) TypeName() string { return "short" }
func (ShortType) String() string   { return "short" }
func (ShortType) isDataType()      {}

// IntegerType is a 32-bit signed integer
type IntegerType struct{}

// TypeName returns "integer"
func (IntegerType) TypeName() string { return "integer" }
func (IntegerType) String() string   { return "int" }
func (IntegerType) isDataType()      {}

// LongType is a 64-bit signed integer
type LongType struct{}

// TypeName returns "long"
func (LongType) TypeName() string { return "long" }
func (LongType) String() string   { return "bigint" }
func (LongType) isDataType()      {}

// FloatType is a 32-bit floating point number
type FloatType struct{}

// TypeName returns "float"
func (FloatType) TypeName() string { return "float" }
func (FloatType) String() string   { return "float" }
func (FloatType) isDataType()      {}

// DoubleType is a 64-bit floating point number
type DoubleType struct{}

// TypeName returns "double"
func (DoubleType) TypeName() string { return "double" }
func (DoubleType) String() string   { return "double" }
func (DoubleType) isDataType()      {}

// DateType is a calendar date
type DateType struct{}

// TypeName returns "date"
func (DateType) TypeName() string { return "date" }
func (DateType) String() string   { return "date" }
func (DateType) isDataType()      {}

// TimestampType is a timestamp with time zone: an instant
type TimestampType struct{}

// TypeName returns "timestamp"
func (TimestampType) TypeName() string { return "timestamp" }
func (TimestampType) String() string   { return "timestamp" }
func (TimestampType) isDataType()      {}

// TimestampNTZType is a timestamp without time zone: a local date-time
type TimestampNTZType struct{}

// TypeName returns "timestamp_ntz"
func (TimestampNTZType) TypeName() string { return "timestamp_ntz" }
func (TimestampNTZType) String() string   { return "timestamp_ntz" }
func (TimestampNTZType) isDataType()      {}

// DecimalType is a fixed-point decimal
type DecimalType struct {
	Precision int
	Scale     int
}

// TypeName returns "decimal"
func (DecimalType) TypeName() string { return "decimal" }

// String returns decimal(P,S)
func (d DecimalType) String() string {
	return fmt.Sprintf("decimal(%d,%d)", d.Precision, d.Scale)
}
func (DecimalType) isDataType() {}

// StringType is a character sequence
type StringType struct{}

// TypeName returns "string"
func (StringType) TypeName() string { return "string" }
func (StringType) String() string   { return "string" }
func (StringType) isDataType()      {}

// BinaryType is a byte array
type BinaryType struct{}

// TypeName returns "binary"
func (BinaryType) TypeName() string { return "binary" }
func (BinaryType) String() string   { return "binary" }
func (BinaryType) isDataType()      {}
