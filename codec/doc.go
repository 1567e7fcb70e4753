// Package codec implements the encode/decode rules shared by all generated
// Shelf API types.
//
// Structs become flat wire objects: one entry per field in declaration
// order, parent fields first, absent optionals omitted. Unions and struct
// subtype groups carry their variant under the reserved ".tag" key; a
// variant whose payload is a plain struct spreads that struct's fields into
// the union's own object, while union or subtype-group payloads nest under
// the variant name.
//
// Decoding is lenient toward API evolution: unknown object keys are
// ignored, unknown tags are surfaced to the caller through each union's
// catch-all variant, and fields with declared defaults are filled in when
// absent. Missing required fields, wrongly-typed values, and numbers
// outside their declared representation are hard decode errors that name
// the offending type and field.
//
// Constraint metadata (patterns, ranges) is deliberately not enforced
// here.
package codec
