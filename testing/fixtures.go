// Package testing provides canonical and requested schema fixtures shared by tests across this module.
package testing

import (
	"github.com/go-sif/prune"
	"github.com/go-sif/prune/requested"
	"github.com/go-sif/prune/schema"
)

// Field ids of the fixture returned by TableSchema
const (
	IDField         = 1
	DataField       = 2
	LocationField   = 3
	LatField        = 4
	LongField       = 5
	TagsField       = 6
	TagsElement     = 7
	PropertiesField = 8
	PropertiesKey   = 9
	PropertiesValue = 10
	PriceField      = 11
	EventTSField    = 12
	PointsField     = 13
	PointsElement   = 14
	XField          = 15
	YField          = 16
)

// TableSchema returns a canonical schema exercising every kind of node:
//
//	1: id: required long
//	2: data: optional string
//	3: location: optional struct<4: lat: required double, 5: long: required double>
//	6: tags: optional list<7: optional string>
//	8: properties: optional map<9: string, 10: optional int>
//	11: price: required decimal(10, 2)
//	12: event_ts: optional timestamptz
//	13: points: optional list<14: required struct<15: x: required long, 16: y: required long>>
func TableSchema() prune.Schema {
	s, err := schema.CreateSchema(
		prune.RequiredField(IDField, "id", prune.LongType{}),
		prune.OptionalField(DataField, "data", prune.StringType{}),
		prune.OptionalField(LocationField, "location", prune.StructOf(
			prune.RequiredField(LatField, "lat", prune.DoubleType{}),
			prune.RequiredField(LongField, "long", prune.DoubleType{}),
		)),
		prune.OptionalField(TagsField, "tags", prune.OptionalListOf(TagsElement, prune.StringType{})),
		prune.OptionalField(PropertiesField, "properties", prune.OptionalMapOf(PropertiesKey, PropertiesValue, prune.StringType{}, prune.IntegerType{})),
		prune.RequiredField(PriceField, "price", prune.DecimalType{Precision: 10, Scale: 2}),
		prune.OptionalField(EventTSField, "event_ts", prune.TimestampType{AdjustToUTC: true}),
		prune.OptionalField(PointsField, "points", prune.OptionalListOf(PointsElement, prune.StructOf(
			prune.RequiredField(XField, "x", prune.LongType{}),
			prune.RequiredField(YField, "y", prune.LongType{}),
		))),
	)
	if err != nil {
		panic(err)
	}
	return s
}

// RequestedFields returns the requested equivalent of each top-level field of TableSchema, keyed by name
func RequestedFields() map[string]requested.StructField {
	return map[string]requested.StructField{
		"id":       {Name: "id", Type: requested.LongType{}, Nullable: false},
		"data":     {Name: "data", Type: requested.StringType{}, Nullable: true},
		"location": {Name: "location", Type: requestedLocation(), Nullable: true},
		"tags":     {Name: "tags", Type: requested.ArrayOf(requested.StringType{}, true), Nullable: true},
		"properties": {
			Name:     "properties",
			Type:     requested.MapOf(requested.StringType{}, requested.IntegerType{}, true),
			Nullable: true,
		},
		"price":    {Name: "price", Type: requested.DecimalType{Precision: 10, Scale: 2}, Nullable: false},
		"event_ts": {Name: "event_ts", Type: requested.TimestampType{}, Nullable: true},
		"points": {
			Name: "points",
			Type: requested.ArrayOf(requested.StructOf(
				requested.StructField{Name: "x", Type: requested.LongType{}, Nullable: false},
				requested.StructField{Name: "y", Type: requested.LongType{}, Nullable: false},
			), true),
			Nullable: true,
		},
	}
}

func requestedLocation() *requested.StructType {
	return requested.StructOf(
		requested.StructField{Name: "lat", Type: requested.DoubleType{}, Nullable: false},
		requested.StructField{Name: "long", Type: requested.DoubleType{}, Nullable: false},
	)
}

// Request builds a requested struct selecting the named top-level fields of TableSchema, in the given order
func Request(names ...string) *requested.StructType {
	all := RequestedFields()
	fields := make([]requested.StructField, 0, len(names))
	for _, name := range names {
		f, ok := all[name]
		if !ok {
			panic("no requested fixture for field " + name)
		}
		fields = append(fields, f)
	}
	return requested.StructOf(fields...)
}

// RequestAll builds a requested struct selecting every top-level field of TableSchema, in canonical order
func RequestAll() *requested.StructType {
	return Request("id", "data", "location", "tags", "properties", "price", "event_ts", "points")
}

// ColumnNames returns the top-level field names of s, in order
func ColumnNames(s prune.Schema) []string {
	names := make([]string, 0, len(s.Columns()))
	for _, f := range s.Columns() {
		names = append(names, f.Name)
	}
	return names
}
