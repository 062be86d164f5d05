// Package event holds the in-memory model of a HepMC2 scattering event.
//
// An [Event] owns an ordered list of [Vertex] values, and each vertex owns
// its incoming and outgoing [Particle] lists by value. Particles refer to
// the vertex they flow into only through [Particle.EndVertex], an integer
// barcode. Nothing in this package follows that relation; it is used by the
// parse package while rebuilding the graph and is otherwise advisory.
//
// # Related Packages
//
//   - github.com/signadot/go-hepmc2/parse - records to events
//   - github.com/signadot/go-hepmc2/encode - events to records
//   - github.com/signadot/go-hepmc2/stream - Reader and Writer
package event
