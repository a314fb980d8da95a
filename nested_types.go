package prune

import (
	"fmt"
	"strings"
)

// NestedField is a named, id-addressed member of a StructType
type NestedField struct {
	ID       int
	Name     string
	Optional bool
	Type     Type
}

// OptionalField is a factory for nullable NestedFields
func OptionalField(id int, name string, t Type) *NestedField {
	return &NestedField{ID: id, Name: name, Optional: true, Type: t}
}

// RequiredField is a factory for non-nullable NestedFields
func RequiredField(id int, name string, t Type) *NestedField {
	return &NestedField{ID: id, Name: name, Optional: false, Type: t}
}

// WithType returns a copy of this NestedField with a different Type. The id,
// name and optionality are preserved.
func (f *NestedField) WithType(t Type) *NestedField {
	return &NestedField{ID: f.ID, Name: f.Name, Optional: f.Optional, Type: t}
}

// String returns a textual representation of this NestedField
func (f *NestedField) String() string {
	if f.Optional {
		return fmt.Sprintf("%d: %s: optional %s", f.ID, f.Name, f.Type)
	}
	return fmt.Sprintf("%d: %s: required %s", f.ID, f.Name, f.Type)
}

// StructType is an ordered sequence of NestedFields
type StructType struct {
	fields []*NestedField
	byName map[string]int
}

// StructOf is a factory for StructTypes. Field names are indexed once, here.
func StructOf(fields ...*NestedField) *StructType {
	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, ok := byName[f.Name]; !ok {
			byName[f.Name] = i
		}
	}
	return &StructType{fields: fields, byName: byName}
}

// TypeID returns StructID
func (s *StructType) TypeID() TypeID { return StructID }
func (s *StructType) isType()        {}

// Fields returns the fields of this StructType in order. The returned slice
// must not be modified.
func (s *StructType) Fields() []*NestedField {
	return s.fields
}

// NumFields returns the number of fields in this StructType
func (s *StructType) NumFields() int {
	return len(s.fields)
}

// Field returns the field with the given name
func (s *StructType) Field(name string) (*NestedField, bool) {
	idx, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return s.fields[idx], true
}

// FieldByID returns the direct child field with the given id
func (s *StructType) FieldByID(id int) (*NestedField, bool) {
	for _, f := range s.fields {
		if f.ID == id {
			return f, true
		}
	}
	return nil, false
}

// String returns struct<...>
func (s *StructType) String() string {
	var res strings.Builder
	res.WriteString("struct<")
	for i, f := range s.fields {
		if i > 0 {
			res.WriteString(", ")
		}
		res.WriteString(f.String())
	}
	res.WriteString(">")
	return res.String()
}

// ListType is a sequence of elements of a single type
type ListType struct {
	ElementID       int
	ElementOptional bool
	ElementType     Type
}

// OptionalListOf is a factory for ListTypes with nullable elements
func OptionalListOf(elementID int, elementType Type) *ListType {
	return &ListType{ElementID: elementID, ElementOptional: true, ElementType: elementType}
}

// RequiredListOf is a factory for ListTypes with non-nullable elements
func RequiredListOf(elementID int, elementType Type) *ListType {
	return &ListType{ElementID: elementID, ElementOptional: false, ElementType: elementType}
}

// TypeID returns ListID
func (l *ListType) TypeID() TypeID { return ListID }
func (l *ListType) isType()        {}

// WithElementType returns a copy of this ListType with a different element
// type. The element id and optionality are preserved.
func (l *ListType) WithElementType(t Type) *ListType {
	return &ListType{ElementID: l.ElementID, ElementOptional: l.ElementOptional, ElementType: t}
}

// String returns list<...>
func (l *ListType) String() string {
	if l.ElementOptional {
		return fmt.Sprintf("list<%d: optional %s>", l.ElementID, l.ElementType)
	}
	return fmt.Sprintf("list<%d: required %s>", l.ElementID, l.ElementType)
}

// MapType associates keys of one type with values of another. Keys are
// never null.
type MapType struct {
	KeyID         int
	KeyType       Type
	ValueID       int
	ValueOptional bool
	ValueType     Type
}

// OptionalMapOf is a factory for MapTypes with nullable values
func OptionalMapOf(keyID int, valueID int, keyType Type, valueType Type) *MapType {
	return &MapType{KeyID: keyID, KeyType: keyType, ValueID: valueID, ValueOptional: true, ValueType: valueType}
}

// RequiredMapOf is a factory for MapTypes with non-nullable values
func RequiredMapOf(keyID int, valueID int, keyType Type, valueType Type) *MapType {
	return &MapType{KeyID: keyID, KeyType: keyType, ValueID: valueID, ValueOptional: false, ValueType: valueType}
}

// TypeID returns MapID
func (m *MapType) TypeID() TypeID { return MapID }
func (m *MapType) isType()        {}

// WithValueType returns a copy of this MapType with a different value type.
// Key and value ids, the key type and value optionality are preserved.
func (m *MapType) WithValueType(t Type) *MapType {
	return &MapType{KeyID: m.KeyID, KeyType: m.KeyType, ValueID: m.ValueID, ValueOptional: m.ValueOptional, ValueType: t}
}

// String returns map<...>
func (m *MapType) String() string {
	opt := "required"
	if m.ValueOptional {
		opt = "optional"
	}
	return fmt.Sprintf("map<%d: %s, %d: %s %s>", m.KeyID, m.KeyType, m.ValueID, opt, m.ValueType)
}
