package projection

import (
	"github.com/go-sif/prune"
	"github.com/go-sif/prune/errors"
	"github.com/go-sif/prune/requested"
)

// projectField decides whether a canonical field survives projection and at
// what type. A nil Type with a nil error means the field is dropped.
func (p *projector) projectField(field *prune.NestedField, req *requested.StructType) (prune.Type, error) {
	// fields are matched by name, since the requested schema has no ids
	rf, ok := req.Field(field.Name)
	if !ok {
		// filter fields survive even when nobody asked for them
		if p.filterRefs.Contains(field.ID) {
			return field.Type, nil
		}
		return nil, nil
	}

	if field.Optional && !rf.Nullable {
		return nil, errors.NullabilityError{Field: field.Name, Position: errors.FieldPosition}
	}

	t, err := p.project(field.Type, rf.Type)
	if err != nil {
		return nil, &errors.FieldError{Field: field.Name, Err: err}
	}
	return t, nil
}
