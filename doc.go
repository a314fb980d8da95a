// Package prune contains the canonical schema model used by column projection.
// A canonical schema is a tree of structs, lists, maps and primitives in which every
// field, list element, map key and map value carries a durable integer id. The
// projection package prunes and reorders such a schema to match a name-addressed
// requested schema (see the requested package), and the projector package wraps it
// in a concurrent, caching service.
package prune
