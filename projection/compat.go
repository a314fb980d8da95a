package projection

import (
	"github.com/go-sif/prune"
	"github.com/go-sif/prune/requested"
)

// compatibleTypes maps each canonical primitive kind to the names of the
// requested types which may represent it. Kinds with refinement rules
// (decimal, timestamp) are checked further in projectPrimitive.
var compatibleTypes = map[prune.TypeID][]string{
	prune.BooleanID:   {"boolean"},
	prune.IntegerID:   {"integer"},
	prune.LongID:      {"long"},
	prune.FloatID:     {"float"},
	prune.DoubleID:    {"double"},
	prune.DateID:      {"date"},
	prune.TimestampID: {"timestamp", "timestamp_ntz"},
	prune.DecimalID:   {"decimal"},
	prune.UUIDID:      {"string", "binary"},
	prune.StringID:    {"string"},
	prune.FixedID:     {"binary"},
	prune.BinaryID:    {"binary"},
}

// IsCompatible returns true iff req is one of the requested kinds which may
// represent the canonical primitive kind id. Refinement rules are not checked.
func IsCompatible(id prune.TypeID, req requested.DataType) bool {
	if req == nil {
		return false
	}
	for _, name := range compatibleTypes[id] {
		if req.TypeName() == name {
			return true
		}
	}
	return false
}
