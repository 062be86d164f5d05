// Package token provides the grammar primitives of HepMC2 records.
//
// A [Scanner] walks a single record line field by field. Every field is
// preceded by one or more blanks (space or tab). Integers have the shape
// -?[0-9]+, floats are any token accepted by 64-bit float parsing, words are
// runs of non-blank bytes and quoted strings are delimited by '"' with no
// escapes.
//
// Scanner methods never panic on short or malformed lines; they return a
// [*ScanErr] wrapping one of [ErrSyntax], [ErrInt] or [ErrFloat].
package token
