// Package gen derives the entity-relationship model from declared schemas.
//
// [Definitions] walks an ordered schema list, keeps the entity
// declarations, and classifies every field into exactly one property kind.
// [Relations] then computes, from the definitions alone, each entity's
// outgoing and incoming reference edges.
//
// Generation is a pure function of its input: it performs no I/O, holds no
// state between calls, and finishes in-memory. Errors are immediate and
// fatal to the call; see the error taxonomy in the root entmap package.
package gen
