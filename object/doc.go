// Package object implements the construction engine: it turns raw
// positional/keyword input into validated, immutable objects according to
// a schema.Type, and (de)serializes them through a canonical textual form.
//
// CONSTRUCTION:
//
// Construct evaluates a schema's property table in declaration order.
// Missing required properties are collected exhaustively and reported
// together; the first invalid value fails fast. Defaults (generated
// identifiers, construction timestamps) are filled from injectable
// clock/id seams so tests are reproducible.
//
// IMMUTABILITY:
//
// An Object never changes after Construct returns. Set and Delete exist
// only to report ImmutableError; there is no internal mutation path.
// Objects are therefore safe for unsynchronized concurrent reads.
//
// CANONICAL FORM:
//
// Serialize renders properties as 4-space-indented JSON in schema
// declaration order, with NFC-normalized strings, no HTML escaping, and
// timestamps at exactly millisecond precision with a literal Z suffix.
// Two objects are equal exactly when their canonical renderings are equal,
// regardless of the ordering of the input they were built from.
package object
