// Package encode serialises events as IO_GenEvent records.
//
// # Usage
//
//	// one event, appended to a buffer
//	buf = encode.AppendEvent(buf[:0], ev)
//
//	// with coloured record prefixes for a terminal
//	err := encode.Encode(ev, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Records are written in the order E, N, U, C, F, H, then each vertex
// followed by its incoming and outgoing particles. Floating point fields
// use the shortest representation which parses back to the same value.
//
// # Related Packages
//
//   - github.com/signadot/go-hepmc2/parse - the inverse, record lines to events
//   - github.com/signadot/go-hepmc2/stream - framed event streams
package encode
