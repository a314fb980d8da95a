package projection

import (
	"github.com/go-sif/prune"
	"github.com/go-sif/prune/errors"
	"github.com/go-sif/prune/requested"
)

// projectStruct projects every field of a canonical struct, then assembles
// the survivors in requested order.
func (p *projector) projectStruct(st *prune.StructType, req requested.DataType) (prune.Type, error) {
	rs, ok := req.(*requested.StructType)
	if !ok {
		return nil, errors.ShapeMismatchError{Expected: "struct", Actual: describe(req)}
	}

	results := make([]prune.Type, st.NumFields())
	for i, field := range st.Fields() {
		t, err := p.projectField(field, rs)
		if err != nil {
			return nil, err
		}
		results[i] = t
	}
	return reorderStruct(st, results, rs)
}

// reorderStruct builds the projected struct from per-field results, where a
// nil result drops the field. Requested fields come first, in requested
// order, followed by unrequested filter fields in canonical order. st itself
// is returned when no field was dropped, retyped or moved.
func reorderStruct(st *prune.StructType, results []prune.Type, rs *requested.StructType) (prune.Type, error) {
	fields := st.Fields()
	changed := false

	projected := newFieldSequence(len(fields))
	for i, field := range fields {
		t := results[i]
		switch {
		case t == nil:
			changed = true
		case t == field.Type:
			projected.add(field)
		default:
			changed = true
			projected.add(field.WithType(t))
		}
	}

	reordered := false
	requestedFields := rs.Fields()
	newFields := make([]*prune.NestedField, 0, len(fields))
	for i, rf := range requestedFields {
		// the name index records the first occurrence of each name
		if first, _ := rs.FieldIndex(rf.Name); first != i {
			return nil, errors.DuplicateFieldError{Field: rf.Name}
		}
		if i >= len(fields) || fields[i].Name != rf.Name {
			reordered = true
		}
		field, ok := projected.take(rf.Name)
		if !ok {
			return nil, errors.MissingFieldError{Field: rf.Name}
		}
		newFields = append(newFields, field)
	}

	if leftovers := projected.remaining(); len(leftovers) > 0 {
		newFields = append(newFields, leftovers...)
		changed = true
	}

	if !reordered && !changed {
		return st, nil
	}
	return prune.StructOf(newFields...), nil
}

// fieldSequence is an insertion-ordered set of fields keyed by name, from
// which fields can be taken out by name.
type fieldSequence struct {
	fields []*prune.NestedField
	index  map[string]int
}

func newFieldSequence(capacity int) *fieldSequence {
	return &fieldSequence{
		fields: make([]*prune.NestedField, 0, capacity),
		index:  make(map[string]int, capacity),
	}
}

func (s *fieldSequence) add(f *prune.NestedField) {
	s.index[f.Name] = len(s.fields)
	s.fields = append(s.fields, f)
}

func (s *fieldSequence) take(name string) (*prune.NestedField, bool) {
	idx, ok := s.index[name]
	if !ok {
		return nil, false
	}
	delete(s.index, name)
	f := s.fields[idx]
	s.fields[idx] = nil
	return f, true
}

func (s *fieldSequence) remaining() []*prune.NestedField {
	var rest []*prune.NestedField
	for _, f := range s.fields {
		if f != nil {
			rest = append(rest, f)
		}
	}
	return rest
}
