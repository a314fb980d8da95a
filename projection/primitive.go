package projection

import (
	"fmt"

	"github.com/go-sif/prune"
	"github.com/go-sif/prune/errors"
	"github.com/go-sif/prune/requested"
)

// projectPrimitive validates a canonical primitive against the requested
// type in scope. Primitives never change: on success p itself is returned.
func projectPrimitive(p prune.PrimitiveType, req requested.DataType) (prune.Type, error) {
	if !IsCompatible(p.TypeID(), req) {
		return nil, errors.IncompatibleTypeError{Canonical: p.String(), Requested: describe(req)}
	}

	switch cp := p.(type) {
	case prune.DecimalType:
		d, ok := req.(requested.DecimalType)
		if !ok {
			return nil, errors.IncompatibleTypeError{Canonical: p.String(), Requested: describe(req)}
		}
		if d.Scale != cp.Scale {
			return nil, errors.IncompatibleTypeError{
				Canonical: p.String(),
				Requested: d.String(),
				Reason:    fmt.Sprintf("incompatible scale: %d != %d", d.Scale, cp.Scale),
			}
		}
		if d.Precision < cp.Precision {
			return nil, errors.IncompatibleTypeError{
				Canonical: p.String(),
				Requested: d.String(),
				Reason:    fmt.Sprintf("incompatible precision: %d < %d", d.Precision, cp.Precision),
			}
		}
	case prune.TimestampType:
		_, withZone := req.(requested.TimestampType)
		if cp.AdjustToUTC && !withZone {
			return nil, errors.IncompatibleTypeError{
				Canonical: p.String(),
				Requested: describe(req),
				Reason:    "timestamp with time zone cannot be read without time zone",
			}
		}
		if !cp.AdjustToUTC && withZone {
			return nil, errors.IncompatibleTypeError{
				Canonical: p.String(),
				Requested: describe(req),
				Reason:    "timestamp without time zone cannot be read as timestamp with time zone",
			}
		}
	}
	return p, nil
}

func describe(req requested.DataType) string {
	if req == nil {
		return "<nil>"
	}
	return req.String()
}
