// Package wire implements the object model used on the wire by the Shelf
// API: an ordered mapping from string keys to wire values (null, bool,
// number, string, array, object), together with a JSON syntax bridge.
//
// Field order inside an object is preserved on both encode and decode so
// that output is stable and diffable; the protocol itself attaches no
// meaning to the order. Numbers keep their source lexeme so that 64-bit
// integers survive a round trip without float conversion.
//
// The reserved key ".tag" identifies the selected variant of a union or
// struct-subtype value; it is an ordinary key at this layer and is given
// meaning by package codec.
package wire
