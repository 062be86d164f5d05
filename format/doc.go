// Package format provides formatting utilities for HepMC2 records.
//
// # Usage
//
//	// Shortest decimal that reads back to the same float64
//	s := format.Float(0.1) // "0.1", not "0.10000000000000001"
//
//	// Append into a reused buffer
//	buf = format.AppendFloat(buf, x)
//
// [Format] names the output formats understood by tooling built on this
// module.
//
// # Related Packages
//
//   - github.com/signadot/go-hepmc2/encode - Encode events to records
package format
