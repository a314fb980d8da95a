package projector

import (
	"strconv"
	"strings"

	"github.com/go-sif/prune"
	"github.com/go-sif/prune/projection"
	"github.com/go-sif/prune/requested"
)

// fingerprint is a complete, unambiguous description of a projection
// request. Every field name is quoted, so distinct requests never share a
// fingerprint whatever characters their names contain.
func fingerprint(canonical prune.Schema, req *requested.StructType, filterRefs projection.FieldIDSet) string {
	var b strings.Builder
	writeCanonical(&b, canonical.AsStruct())
	b.WriteByte(0)
	writeRequested(&b, req)
	b.WriteByte(0)
	for i, id := range filterRefs.IDs() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

func writeOptional(b *strings.Builder, optional bool) {
	if optional {
		b.WriteString("?")
	} else {
		b.WriteString("!")
	}
}

func writeCanonical(b *strings.Builder, t prune.Type) {
	switch nt := t.(type) {
	case *prune.StructType:
		b.WriteString("struct<")
		for i, f := range nt.Fields() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(f.ID))
			b.WriteByte(':')
			b.WriteString(strconv.Quote(f.Name))
			writeOptional(b, f.Optional)
			writeCanonical(b, f.Type)
		}
		b.WriteByte('>')
	case *prune.ListType:
		b.WriteString("list<")
		b.WriteString(strconv.Itoa(nt.ElementID))
		writeOptional(b, nt.ElementOptional)
		writeCanonical(b, nt.ElementType)
		b.WriteByte('>')
	case *prune.MapType:
		b.WriteString("map<")
		b.WriteString(strconv.Itoa(nt.KeyID))
		b.WriteByte(':')
		writeCanonical(b, nt.KeyType)
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(nt.ValueID))
		writeOptional(b, nt.ValueOptional)
		writeCanonical(b, nt.ValueType)
		b.WriteByte('>')
	case nil:
		b.WriteString("nil")
	default:
		// primitive names carry no user text
		b.WriteString(t.String())
	}
}

func writeRequested(b *strings.Builder, t requested.DataType) {
	switch nt := t.(type) {
	case *requested.StructType:
		b.WriteString("struct<")
		for i, f := range nt.Fields() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(f.Name))
			writeOptional(b, f.Nullable)
			writeRequested(b, f.Type)
		}
		b.WriteByte('>')
	case *requested.ArrayType:
		b.WriteString("array<")
		writeOptional(b, nt.ContainsNull)
		writeRequested(b, nt.ElementType)
		b.WriteByte('>')
	case *requested.MapType:
		b.WriteString("map<")
		writeRequested(b, nt.KeyType)
		b.WriteByte(',')
		writeOptional(b, nt.ValueContainsNull)
		writeRequested(b, nt.ValueType)
		b.WriteByte('>')
	case nil:
		b.WriteString("nil")
	default:
		b.WriteString(t.String())
	}
}
