package prune

import "fmt"

// TypeID identifies the kind of a canonical Type
type TypeID int

const (
	// BooleanID identifies BooleanType
	BooleanID TypeID = iota + 1
	// IntegerID identifies IntegerType (32-bit signed)
	IntegerID
	// LongID identifies LongType (64-bit signed)
	LongID
	// FloatID identifies FloatType
	FloatID
	// DoubleID identifies DoubleType
	DoubleID
	// DateID identifies DateType
	DateID
	// TimestampID identifies TimestampType, with or without time zone
	TimestampID
	// DecimalID identifies DecimalType
	DecimalID
	// UUIDID identifies UUIDType
	UUIDID
	// StringID identifies StringType
	StringID
	// FixedID identifies FixedType
	FixedID
	// BinaryID identifies BinaryType
	BinaryID
	// StructID identifies StructType
	StructID
	// ListID identifies ListType
	ListID
	// MapID identifies MapType
	MapID
)

// String returns a textual representation of this TypeID
func (id TypeID) String() string {
	switch id {
	case BooleanID:
		return "boolean"
	case IntegerID:
		return "int"
	case LongID:
		return "long"
	case FloatID:
		return "float"
	case DoubleID:
		return "double"
	case DateID:
		return "date"
	case TimestampID:
		return "timestamp"
	case DecimalID:
		return "decimal"
	case UUIDID:
		return "uuid"
	case StringID:
		return "string"
	case FixedID:
		return "fixed"
	case BinaryID:
		return "binary"
	case StructID:
		return "struct"
	case ListID:
		return "list"
	case MapID:
		return "map"
	default:
		return fmt.Sprintf("unknown(%d)", int(id))
	}
}

// Type is implemented by every node of a canonical schema. The set of
// implementations is closed: *StructType, *ListType, *MapType and the
// PrimitiveType values declared in this package.
type Type interface {
	TypeID() TypeID
	String() string
	isType()
}

// PrimitiveType is a leaf Type. Primitives are comparable values, so two
// primitives are identical iff they are equal.
type PrimitiveType interface {
	Type
	isPrimitive()
}

// IsPrimitive returns true iff t is a PrimitiveType
func IsPrimitive(t Type) (isPrimitive bool) {
	_, isPrimitive = t.(PrimitiveType)
	return
}

// BooleanType is a true/false value
type BooleanType struct{}

// TypeID returns BooleanID
func (BooleanType) TypeID() TypeID { return BooleanID }
func (BooleanType) String() string { return "boolean" }
func (BooleanType) isType()        {}
func (BooleanType) isPrimitive()   {}

// IntegerType is a 32-bit signed integer
type IntegerType struct{}

// TypeID returns IntegerID
func (IntegerType) TypeID() TypeID { return IntegerID }
func (IntegerType) String() string { return "int" }
func (IntegerType) isType()        {}
func (IntegerType) isPrimitive()   {}

// LongType is a 64-bit signed integer
type LongType struct{}

// TypeID returns LongID
func (LongType) TypeID() TypeID { return LongID }
func (LongType) String() string { return "long" }
func (LongType) isType()        {}
func (LongType) isPrimitive()   {}

// FloatType is a 32-bit IEEE 754 floating point number
type FloatType struct{}

// TypeID returns FloatID
func (FloatType) TypeID() TypeID { return FloatID }
func (FloatType) String() string { return "float" }
func (FloatType) isType()        {}
func (FloatType) isPrimitive()   {}

// DoubleType is a 64-bit IEEE 754 floating point number
type DoubleType struct{}

// TypeID returns DoubleID
func (DoubleType) TypeID() TypeID { return DoubleID }
func (DoubleType) String() string { return "double" }
func (DoubleType) isType()        {}
func (DoubleType) isPrimitive()   {}

// DateType is a calendar date without time of day or zone
type DateType struct{}

// TypeID returns DateID
func (DateType) TypeID() TypeID { return DateID }
func (DateType) String() string { return "date" }
func (DateType) isType()        {}
func (DateType) isPrimitive()   {}

// TimestampType is a timestamp with microsecond precision. When AdjustToUTC
// is set, values are instants stored relative to UTC (timestamptz); otherwise
// they are local date-times with no zone information.
type TimestampType struct {
	AdjustToUTC bool
}

// TypeID returns TimestampID
func (TimestampType) TypeID() TypeID { return TimestampID }

// String returns "timestamptz" or "timestamp"
func (t TimestampType) String() string {
	if t.AdjustToUTC {
		return "timestamptz"
	}
	return "timestamp"
}
func (TimestampType) isType()      {}
func (TimestampType) isPrimitive() {}

// DecimalType is a fixed-point decimal with a given precision and scale
type DecimalType struct {
	Precision int
	Scale     int
}

// TypeID returns DecimalID
func (DecimalType) TypeID() TypeID { return DecimalID }

// String returns decimal(P, S)
func (t DecimalType) String() string {
	return fmt.Sprintf("decimal(%d, %d)", t.Precision, t.Scale)
}
func (DecimalType) isType()      {}
func (DecimalType) isPrimitive() {}

// UUIDType is a universally unique identifier
type UUIDType struct{}

// TypeID returns UUIDID
func (UUIDType) TypeID() TypeID { return UUIDID }
func (UUIDType) String() string { return "uuid" }
func (UUIDType) isType()        {}
func (UUIDType) isPrimitive()   {}

// StringType is a UTF-8 character sequence
type StringType struct{}

// TypeID returns StringID
func (StringType) TypeID() TypeID { return StringID }
func (StringType) String() string { return "string" }
func (StringType) isType()        {}
func (StringType) isPrimitive()   {}

// FixedType is a byte array of a fixed Length
type FixedType struct {
	Length int
}

// TypeID returns FixedID
func (FixedType) TypeID() TypeID { return FixedID }

// String returns fixed[L]
func (t FixedType) String() string {
	return fmt.Sprintf("fixed[%d]", t.Length)
}
func (FixedType) isType()      {}
func (FixedType) isPrimitive() {}

// BinaryType is a variable-length byte array
type BinaryType struct{}

// TypeID returns BinaryID
func (BinaryType) TypeID() TypeID { return BinaryID }
func (BinaryType) String() string { return "binary" }
func (BinaryType) isType()        {}
func (BinaryType) isPrimitive()   {}
