// Package hepmc2 reads and writes HepMC2 IO_GenEvent event listings.
//
// The event model lives in package event, the streaming Reader and Writer
// in package stream. This package adds whole-listing helpers and the
// event level operations used by the hepmc2 command: matching events
// against expressions and patching them with JSON patches.
//
// # Usage
//
//	evs, err := hepmc2.ReadAll(f)
//	if err != nil {
//	    return err
//	}
//	w := hepmc2.MustCompileWhere("len(event.Vertices) > 2 && count(21) > 0")
//	var keep []*event.Event
//	for _, ev := range evs {
//	    if ok, _ := w.Match(ev); ok {
//	        keep = append(keep, ev)
//	    }
//	}
//	err = hepmc2.WriteAll(out, keep)
//
// # Related Packages
//
//   - github.com/signadot/go-hepmc2/event - the event model
//   - github.com/signadot/go-hepmc2/stream - streaming Reader and Writer
//   - github.com/signadot/go-hepmc2/encode - record serialisation
package hepmc2
