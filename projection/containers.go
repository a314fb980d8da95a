package projection

import (
	"github.com/go-sif/prune"
	"github.com/go-sif/prune/errors"
	"github.com/go-sif/prune/requested"
)

// projectList projects a list's element type against a requested array. A
// new ListType is built only when the element type changed.
func (p *projector) projectList(list *prune.ListType, req requested.DataType) (prune.Type, error) {
	array, ok := req.(*requested.ArrayType)
	if !ok {
		return nil, errors.ShapeMismatchError{Expected: "array", Actual: describe(req)}
	}
	if list.ElementOptional && !array.ContainsNull {
		return nil, errors.NullabilityError{Field: array.String(), Position: errors.ElementPosition}
	}

	elementType, err := p.project(list.ElementType, array.ElementType)
	if err != nil {
		return nil, err
	}
	if elementType == list.ElementType {
		return list, nil
	}
	return list.WithElementType(elementType), nil
}

// projectMap projects a map's value type against a requested map. Requested
// keys must be strings. A new MapType is built only when the value type changed.
func (p *projector) projectMap(m *prune.MapType, req requested.DataType) (prune.Type, error) {
	rm, ok := req.(*requested.MapType)
	if !ok {
		return nil, errors.ShapeMismatchError{Expected: "map", Actual: describe(req)}
	}
	if m.ValueOptional && !rm.ValueContainsNull {
		return nil, errors.NullabilityError{Field: rm.String(), Position: errors.ValuePosition}
	}
	if _, isString := rm.KeyType.(requested.StringType); !isString {
		return nil, errors.InvalidMapKeyError{KeyType: describe(rm.KeyType)}
	}

	valueType, err := p.project(m.ValueType, rm.ValueType)
	if err != nil {
		return nil, err
	}
	if valueType == m.ValueType {
		return m, nil
	}
	return m.WithValueType(valueType), nil
}
