// Package parse turns HepMC2 record lines into events.
//
// There is one function per record type (E, V, P, U, F, H, N, C). The
// [Builder] feeds a sequence of record lines to them and assembles one
// [event.Event], attaching every P record to the vertex declared last: a
// particle whose end vertex barcode equals that vertex's barcode is
// incoming, any other particle is outgoing.
//
// # Usage
//
//	var b parse.Builder
//	if err := b.Begin(eventLine); err != nil {
//	    return err
//	}
//	for _, ln := range bodyLines {
//	    if err := b.Add(ln); err != nil {
//	        return err
//	    }
//	}
//	ev := b.Event()
//
// For streams of events use the stream package.
package parse
