// Package projection prunes and reorders a canonical schema to match a requested schema.
//
// Projection keeps only the canonical fields a consumer requested, in the consumer's order,
// plus any field whose id is referenced by a row filter. Every kept field's requested
// representation is validated against its canonical type: nullability may only widen,
// containers must have the same shape, and primitives must appear in a fixed compatibility
// table. A projection either succeeds completely or fails with a single error from the
// errors package; no partial schema is ever returned.
//
// Projection is a pure function of its inputs and is safe for concurrent use.
package projection
