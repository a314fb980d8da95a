package prune

// Schema is a canonical table schema: a root StructType plus an index
// from field ids to the fields which carry them.
type Schema interface {
	// AsStruct returns the root struct of this Schema
	AsStruct() *StructType
	// Columns returns the top-level fields of this Schema, in order
	Columns() []*NestedField
	// FindField locates a (possibly nested) field by id
	FindField(id int) (*NestedField, bool)
	// FindFieldByName locates a field by dotted name path, e.g. "location.lat"
	FindFieldByName(path string) (*NestedField, bool)
	// FieldIDs returns every id in this Schema, sorted ascending
	FieldIDs() []int
	String() string
}
