// Package low builds source-fidelity ("low-level") OpenAPI records from a parsed
// YAML/JSON node tree.
//
// Every record produced by this package and its version subpackages (v30 for
// OpenAPI 3.0.x, v31 for OpenAPI 3.1.x) keeps a pointer to the exact
// [yaml.Node] it was built from, and every declared field keeps both its key
// node and its value node. Downstream tooling can therefore anchor a
// diagnostic to the precise line and column of any key or value.
//
// # Never fail, preserve instead
//
// Builders never return errors and never panic on malformed input. When a node
// does not have the shape an object requires (for example a scalar where a
// mapping is expected), the builder returns the invalid arm of a [Result]: the
// decoded value and the node it came from. Field values are not coerced either;
// a "description" holding a number keeps the number.
//
// # Key classification
//
// Each key of a mapping is classified as exactly one of:
//
//   - declared: named by the object's field table (see [Fields])
//   - extension: an "x-" prefixed key on an extension-bearing object
//   - unknown: anything else, available through [ExtractUnknownFields]
//
// Pattern-keyed objects (Paths, Responses, Callback, SecurityRequirement) admit
// dynamic keys through a per-object predicate; admitted keys count as declared.
//
// # Polymorphism
//
// Fields that may hold either an object or a Reference Object are built with
// [BuildOrReference], which yields an [OrReference] tagged union.
//
// # Concurrency
//
// Building is synchronous and CPU-bound. The input tree is only read, so
// independent subtrees may be built in parallel, each with its own [Context].
package low
