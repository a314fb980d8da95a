package schema

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-sif/prune"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	decimalPattern = regexp.MustCompile(`^decimal\(\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	fixedPattern   = regexp.MustCompile(`^fixed\[\s*(\d+)\s*\]$`)
)

// jsonType is the decoded form of any non-primitive type in the table schema JSON layout
type jsonType struct {
	Type            string              `json:"type"`
	Fields          []jsonField         `json:"fields"`
	ElementID       int                 `json:"element-id"`
	ElementRequired bool                `json:"element-required"`
	Element         jsoniter.RawMessage `json:"element"`
	KeyID           int                 `json:"key-id"`
	Key             jsoniter.RawMessage `json:"key"`
	ValueID         int                 `json:"value-id"`
	ValueRequired   bool                `json:"value-required"`
	Value           jsoniter.RawMessage `json:"value"`
}

type jsonField struct {
	ID       int                 `json:"id"`
	Name     string              `json:"name"`
	Required bool                `json:"required"`
	Type     jsoniter.RawMessage `json:"type"`
}

type jsonStructOut struct {
	Type   string         `json:"type"`
	Fields []jsonFieldOut `json:"fields"`
}

type jsonFieldOut struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Required bool        `json:"required"`
	Type     interface{} `json:"type"`
}

type jsonListOut struct {
	Type            string      `json:"type"`
	ElementID       int         `json:"element-id"`
	ElementRequired bool        `json:"element-required"`
	Element         interface{} `json:"element"`
}

type jsonMapOut struct {
	Type          string      `json:"type"`
	KeyID         int         `json:"key-id"`
	Key           interface{} `json:"key"`
	ValueID       int         `json:"value-id"`
	ValueRequired bool        `json:"value-required"`
	Value         interface{} `json:"value"`
}

// ParseJSON decodes a Schema from the table schema JSON layout, e.g.
//
//	{"type":"struct","fields":[{"id":1,"name":"id","required":true,"type":"long"}]}
func ParseJSON(data []byte) (prune.Schema, error) {
	t, err := parseType(data)
	if err != nil {
		return nil, err
	}
	root, ok := t.(*prune.StructType)
	if !ok {
		return nil, fmt.Errorf("Schema JSON must describe a struct, was %s", t)
	}
	return FromStruct(root)
}

func parseType(raw jsoniter.RawMessage) (prune.Type, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("Schema JSON is missing a type")
	}
	if raw[0] == '"' {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return nil, err
		}
		return parsePrimitive(name)
	}
	var jt jsonType
	if err := json.Unmarshal(raw, &jt); err != nil {
		return nil, err
	}
	switch jt.Type {
	case "struct":
		fields := make([]*prune.NestedField, 0, len(jt.Fields))
		for _, jf := range jt.Fields {
			ft, err := parseType(jf.Type)
			if err != nil {
				return nil, fmt.Errorf("Field %s: %w", jf.Name, err)
			}
			fields = append(fields, &prune.NestedField{ID: jf.ID, Name: jf.Name, Optional: !jf.Required, Type: ft})
		}
		return prune.StructOf(fields...), nil
	case "list":
		et, err := parseType(jt.Element)
		if err != nil {
			return nil, fmt.Errorf("List element: %w", err)
		}
		return &prune.ListType{ElementID: jt.ElementID, ElementOptional: !jt.ElementRequired, ElementType: et}, nil
	case "map":
		kt, err := parseType(jt.Key)
		if err != nil {
			return nil, fmt.Errorf("Map key: %w", err)
		}
		vt, err := parseType(jt.Value)
		if err != nil {
			return nil, fmt.Errorf("Map value: %w", err)
		}
		return &prune.MapType{KeyID: jt.KeyID, KeyType: kt, ValueID: jt.ValueID, ValueOptional: !jt.ValueRequired, ValueType: vt}, nil
	default:
		return nil, fmt.Errorf("Unsupported schema type %q", jt.Type)
	}
}

func parsePrimitive(name string) (prune.Type, error) {
	switch name {
	case "boolean":
		return prune.BooleanType{}, nil
	case "int":
		return prune.IntegerType{}, nil
	case "long":
		return prune.LongType{}, nil
	case "float":
		return prune.FloatType{}, nil
	case "double":
		return prune.DoubleType{}, nil
	case "date":
		return prune.DateType{}, nil
	case "timestamp":
		return prune.TimestampType{AdjustToUTC: false}, nil
	case "timestamptz":
		return prune.TimestampType{AdjustToUTC: true}, nil
	case "uuid":
		return prune.UUIDType{}, nil
	case "string":
		return prune.StringType{}, nil
	case "binary":
		return prune.BinaryType{}, nil
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
		return prune.DecimalType{Precision: precision, Scale: scale}, nil
	}
	if m := fixedPattern.FindStringSubmatch(name); m != nil {
		length, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("Invalid fixed length in %q: %w", name, err)
		}
		return prune.FixedType{Length: length}, nil
	}
	return nil, fmt.Errorf("Unsupported primitive type %q", name)
}

// ToJSON encodes a Schema in the table schema JSON layout
func ToJSON(s prune.Schema) ([]byte, error) {
	return json.Marshal(typeToJSON(s.AsStruct()))
}

func typeToJSON(t prune.Type) interface{} {
	switch nt := t.(type) {
	case *prune.StructType:
		fields := make([]jsonFieldOut, 0, nt.NumFields())
		for _, f := range nt.Fields() {
			fields = append(fields, jsonFieldOut{ID: f.ID, Name: f.Name, Required: !f.Optional, Type: typeToJSON(f.Type)})
		}
		return jsonStructOut{Type: "struct", Fields: fields}
	case *prune.ListType:
		return jsonListOut{
			Type:            "list",
			ElementID:       nt.ElementID,
			ElementRequired: !nt.ElementOptional,
			Element:         typeToJSON(nt.ElementType),
		}
	case *prune.MapType:
		return jsonMapOut{
			Type:          "map",
			KeyID:         nt.KeyID,
			Key:           typeToJSON(nt.KeyType),
			ValueID:       nt.ValueID,
			ValueRequired: !nt.ValueOptional,
			Value:         typeToJSON(nt.ValueType),
		}
	default:
		// primitive String() values are their JSON names
		return t.String()
	}
}
