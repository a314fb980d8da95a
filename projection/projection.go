package projection

import (
	"fmt"

	"github.com/go-sif/prune"
	"github.com/go-sif/prune/errors"
	"github.com/go-sif/prune/requested"
	"github.com/go-sif/prune/schema"
)

// projector carries the state shared by one projection. The requested type
// in scope is passed down the recursion rather than stored here.
type projector struct {
	filterRefs FieldIDSet
}

// Project prunes and reorders a canonical schema to match a requested struct,
// retaining any field whose id is in filterRefs. When nothing needs to change,
// canonical itself is returned.
//
// Every requested field name is expected to exist in the canonical schema;
// resolving requested names against the table is the caller's job. A name
// which does not resolve fails with errors.MissingFieldError, and a name
// requested twice in one struct fails with errors.DuplicateFieldError.
func Project(canonical prune.Schema, req *requested.StructType, filterRefs FieldIDSet) (prune.Schema, error) {
	if canonical == nil {
		return nil, fmt.Errorf("Cannot project a nil schema")
	}
	if req == nil {
		return nil, fmt.Errorf("Cannot project to a nil requested schema")
	}
	root := canonical.AsStruct()
	projected, err := ProjectType(root, req, filterRefs)
	if err != nil {
		return nil, err
	}
	if projected == root {
		return canonical, nil
	}
	st, ok := projected.(*prune.StructType)
	if !ok {
		// unreachable: struct projection always produces a struct
		return nil, fmt.Errorf("Projection of a struct produced %s", projected)
	}
	return schema.FromStruct(st)
}

// ProjectType projects any canonical type against the requested type at the
// same position. It returns t itself when t needs no change.
func ProjectType(t prune.Type, req requested.DataType, filterRefs FieldIDSet) (prune.Type, error) {
	p := &projector{filterRefs: filterRefs}
	return p.project(t, req)
}

func (p *projector) project(t prune.Type, req requested.DataType) (prune.Type, error) {
	switch nt := t.(type) {
	case *prune.StructType:
		return p.projectStruct(nt, req)
	case *prune.ListType:
		return p.projectList(nt, req)
	case *prune.MapType:
		return p.projectMap(nt, req)
	case prune.PrimitiveType:
		return projectPrimitive(nt, req)
	case nil:
		return nil, fmt.Errorf("Cannot project a nil type")
	default:
		return nil, errors.ShapeMismatchError{Expected: t.TypeID().String(), Actual: describe(req)}
	}
}
