package requested

import (
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
)

// FromArrowSchema adapts an Arrow schema into a requested StructType. Field
// order and nullability are taken from the Arrow fields.
func FromArrowSchema(schema *arrow.Schema) (*StructType, error) {
	if schema == nil {
		return nil, fmt.Errorf("Arrow schema is nil")
	}
	return fromArrowFields(schema.Fields())
}

func fromArrowFields(arrowFields []arrow.Field) (*StructType, error) {
	fields := make([]StructField, 0, len(arrowFields))
	for _, af := range arrowFields {
		t, err := FromArrowType(af.Type)
		if err != nil {
			return nil, fmt.Errorf("Arrow field %s: %w", af.Name, err)
		}
		fields = append(fields, StructField{Name: af.Name, Type: t, Nullable: af.Nullable})
	}
	return StructOf(fields...), nil
}

// FromArrowType adapts a single Arrow data type. Timestamps carrying a time
// zone become TimestampType, and timestamps without one become TimestampNTZType.
func FromArrowType(t arrow.DataType) (DataType, error) {
	switch at := t.(type) {
	case *arrow.BooleanType:
		return BooleanType{}, nil
	case *arrow.Int8Type:
		return ByteType{}, nil
	case *arrow.Int16Type:
		return ShortType{}, nil
	case *arrow.Int32Type:
		return IntegerType{}, nil
	case *arrow.Int64Type:
		return LongType{}, nil
	case *arrow.Float32Type:
		return FloatType{}, nil
	case *arrow.Float64Type:
		return DoubleType{}, nil
	case *arrow.Date32Type, *arrow.Date64Type:
		return DateType{}, nil
	case *arrow.TimestampType:
		if at.TimeZone != "" {
			return TimestampType{}, nil
		}
		return TimestampNTZType{}, nil
	case *arrow.Decimal128Type:
		return DecimalType{Precision: int(at.Precision), Scale: int(at.Scale)}, nil
	case *arrow.Decimal256Type:
		return DecimalType{Precision: int(at.Precision), Scale: int(at.Scale)}, nil
	case *arrow.StringType, *arrow.LargeStringType:
		return StringType{}, nil
	case *arrow.BinaryType, *arrow.LargeBinaryType, *arrow.FixedSizeBinaryType:
		return BinaryType{}, nil
	case *arrow.MapType:
		keyType, err := FromArrowType(at.KeyType())
		if err != nil {
			return nil, fmt.Errorf("map key: %w", err)
		}
		item := at.ItemField()
		valueType, err := FromArrowType(item.Type)
		if err != nil {
			return nil, fmt.Errorf("map value: %w", err)
		}
		return MapOf(keyType, valueType, item.Nullable), nil
	case *arrow.ListType:
		return fromArrowList(at.ElemField())
	case *arrow.LargeListType:
		return fromArrowList(at.ElemField())
	case *arrow.StructType:
		return fromArrowFields(at.Fields())
	default:
		return nil, fmt.Errorf("Unsupported Arrow type %s", t)
	}
}

func fromArrowList(elem arrow.Field) (DataType, error) {
	elementType, err := FromArrowType(elem.Type)
	if err != nil {
		return nil, fmt.Errorf("list element: %w", err)
	}
	return ArrayOf(elementType, elem.Nullable), nil
}
