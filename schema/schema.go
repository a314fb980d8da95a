package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-sif/prune"
	"github.com/hashicorp/go-multierror"
)

// schema indexes a canonical root struct by field id and by dotted name path.
// List elements and map keys and values are indexed as synthetic fields named
// "element", "key" and "value", so that every id in the tree can be found.
type schema struct {
	root   *prune.StructType
	byID   map[int]*prune.NestedField
	byName map[string]int
}

// CreateSchema is a factory for Schemas. It fails if the fields contain
// duplicate ids, duplicate sibling names, or maps with non-string keys.
func CreateSchema(fields ...*prune.NestedField) (prune.Schema, error) {
	return FromStruct(prune.StructOf(fields...))
}

// FromStruct builds a Schema around an existing root struct, validating it as CreateSchema does
func FromStruct(root *prune.StructType) (prune.Schema, error) {
	if root == nil {
		return nil, fmt.Errorf("Cannot create a schema from a nil struct")
	}
	s := &schema{
		root:   root,
		byID:   make(map[int]*prune.NestedField),
		byName: make(map[string]int),
	}
	var multierr *multierror.Error
	s.indexStruct("", root, &multierr)
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *schema) add(path string, f *prune.NestedField, multierr **multierror.Error) {
	if existing, ok := s.byID[f.ID]; ok {
		*multierr = multierror.Append(*multierr, fmt.Errorf("Schema contains duplicate field id %d: %s and %s", f.ID, existing.Name, f.Name))
		return
	}
	s.byID[f.ID] = f
	s.byName[path] = f.ID
}

func (s *schema) indexStruct(prefix string, st *prune.StructType, multierr **multierror.Error) {
	seen := make(map[string]bool, st.NumFields())
	for _, f := range st.Fields() {
		path := join(prefix, f.Name)
		if seen[f.Name] {
			*multierr = multierror.Append(*multierr, fmt.Errorf("Schema contains duplicate field name %s", path))
			continue
		}
		seen[f.Name] = true
		if f.Type == nil {
			*multierr = multierror.Append(*multierr, fmt.Errorf("Field %s has no type", path))
			continue
		}
		s.add(path, f, multierr)
		s.indexType(path, f.Type, multierr)
	}
}

func (s *schema) indexType(path string, t prune.Type, multierr **multierror.Error) {
	switch nt := t.(type) {
	case *prune.StructType:
		s.indexStruct(path, nt, multierr)
	case *prune.ListType:
		elementPath := join(path, "element")
		s.add(elementPath, &prune.NestedField{ID: nt.ElementID, Name: "element", Optional: nt.ElementOptional, Type: nt.ElementType}, multierr)
		s.indexType(elementPath, nt.ElementType, multierr)
	case *prune.MapType:
		if _, isString := nt.KeyType.(prune.StringType); !isString {
			*multierr = multierror.Append(*multierr, fmt.Errorf("Map %s has a non-string key type: %s", path, nt.KeyType))
		}
		s.add(join(path, "key"), prune.RequiredField(nt.KeyID, "key", nt.KeyType), multierr)
		valuePath := join(path, "value")
		s.add(valuePath, &prune.NestedField{ID: nt.ValueID, Name: "value", Optional: nt.ValueOptional, Type: nt.ValueType}, multierr)
		s.indexType(valuePath, nt.ValueType, multierr)
	}
}

func join(prefix string, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// AsStruct returns the root struct of this Schema
func (s *schema) AsStruct() *prune.StructType {
	return s.root
}

// Columns returns the top-level fields of this Schema, in order
func (s *schema) Columns() []*prune.NestedField {
	return s.root.Fields()
}

// FindField locates a (possibly nested) field by id
func (s *schema) FindField(id int) (*prune.NestedField, bool) {
	f, ok := s.byID[id]
	return f, ok
}

// FindFieldByName locates a field by dotted name path
func (s *schema) FindFieldByName(path string) (*prune.NestedField, bool) {
	id, ok := s.byName[path]
	if !ok {
		return nil, false
	}
	return s.FindField(id)
}

// FieldIDs returns every id in this Schema, sorted ascending
func (s *schema) FieldIDs() []int {
	ids := make([]int, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// String returns a multi-line textual representation of this Schema
func (s *schema) String() string {
	var res strings.Builder
	res.WriteString("table {\n")
	for _, f := range s.root.Fields() {
		fmt.Fprintf(&res, "  %s\n", f)
	}
	res.WriteString("}")
	return res.String()
}
