package requested

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/tidwall/gjson"
)

var decimalPattern = regexp.MustCompile(`^decimal\(\s*(\d+)\s*,\s*(-?\d+)\s*\)$`)

// ParseJSON parses a requested schema from Spark's schema JSON layout, e.g.
//
//	{"type":"struct","fields":[{"name":"id","type":"long","nullable":false,"metadata":{}}]}
func ParseJSON(data []byte) (*StructType, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("Requested schema is not valid JSON")
	}
	t, err := parseType(gjson.ParseBytes(data))
	if err != nil {
		return nil, err
	}
	st, ok := t.(*StructType)
	if !ok {
		return nil, fmt.Errorf("Requested schema must be a struct, was %s", t)
	}
	return st, nil
}

func parseType(v gjson.Result) (DataType, error) {
	if v.Type == gjson.String {
		return parseLeaf(v.String())
	}
	if !v.IsObject() {
		return nil, fmt.Errorf("Requested type must be a string or an object, was %s", v.Raw)
	}
	switch kind := v.Get("type").String(); kind {
	case "struct":
		return parseStruct(v)
	case "array":
		elementType, err := parseType(v.Get("elementType"))
		if err != nil {
			return nil, err
		}
		return ArrayOf(elementType, boolOrDefault(v.Get("containsNull"), true)), nil
	case "map":
		keyType, err := parseType(v.Get("keyType"))
		if err != nil {
			return nil, err
		}
		valueType, err := parseType(v.Get("valueType"))
		if err != nil {
			return nil, err
		}
		return MapOf(keyType, valueType, boolOrDefault(v.Get("valueContainsNull"), true)), nil
	default:
		return nil, fmt.Errorf("Unsupported requested type %q", kind)
	}
}

func parseStruct(v gjson.Result) (*StructType, error) {
	fieldsJSON := v.Get("fields")
	if !fieldsJSON.IsArray() {
		return nil, fmt.Errorf("Requested struct has no fields array: %s", v.Raw)
	}
	var fields []StructField
	var err error
	fieldsJSON.ForEach(func(_, f gjson.Result) bool {
		name := f.Get("name")
		if name.Type != gjson.String {
			err = fmt.Errorf("Requested struct field has no name: %s", f.Raw)
			return false
		}
		var fieldType DataType
		fieldType, err = parseType(f.Get("type"))
		if err != nil {
			err = fmt.Errorf("Requested field %s: %w", name.String(), err)
			return false
		}
		fields = append(fields, StructField{
			Name:     name.String(),
			Type:     fieldType,
			Nullable: boolOrDefault(f.Get("nullable"), true),
		})
		return true
	})
	if err != nil {
		return nil, err
	}
	return StructOf(fields...), nil
}

func parseLeaf(name string) (DataType, error) {
	switch name {
	case "boolean":
		return BooleanType{}, nil
	case "byte":
		return ByteType{}, nil
	case "short":
		return ShortType{}, nil
	case "integer":
		return IntegerType{}, nil
	case "long":
		return LongType{}, nil
	case "float":
		return FloatType{}, nil
	case "double":
		return DoubleType{}, nil
	case "date":
		return DateType{}, nil
	case "timestamp":
		return TimestampType{}, nil
	case "timestamp_ntz":
		return TimestampNTZType{}, nil
	case "string":
		return StringType{}, nil
	case "binary":
		return BinaryType{}, nil
	case "decimal":
		// Spark's default precision and scale
		return DecimalType{Precision: 10, Scale: 0}, nil
	}
	if m := decimalPattern.FindStringSubmatch(name); m != nil {
		precision, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("Invalid decimal precision in %q: %w", name, err)
		}
		scale, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("Invalid decimal scale in %q: %w", name, err)
		}
		return DecimalType{Precision: precision, Scale: scale}, nil
	}
	return nil, fmt.Errorf("Unsupported requested type %q", name)
}

func boolOrDefault(v gjson.Result, def bool) bool {
	if !v.Exists() {
		return def
	}
	return v.Bool()
}
