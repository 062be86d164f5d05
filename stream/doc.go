// Package stream reads and writes framed IO_GenEvent event listings.
//
// A listing is a header, any number of events and a footer:
//
//	HepMC::Version 2.06.09
//	HepMC::IO_GenEvent-START_EVENT_LISTING
//	E 0 -1 -1 -1 -1 0 0 1 0 0 0 0
//	...
//	HepMC::IO_GenEvent-END_EVENT_LISTING
//
// # Example: Reading
//
//	r := stream.NewReader(f)
//	for ev, err := range r.All(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(ev.Number, len(ev.Vertices))
//	}
//
// # Example: Writing
//
//	w, err := stream.NewWriter(f)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	for _, ev := range events {
//	    if err := w.Write(ev); err != nil {
//	        return err
//	    }
//	}
//	return w.Finish()
//
// Close is the fallback for paths which return early: it writes the footer
// if Finish was not called and logs, rather than returns, any failure.
//
// # Transports
//
// Readers pull lines from a Source and Writers push records to a Sink.
// NewReaderSource and NewWriterSink block on an io.Reader or io.Writer.
// NewChanSource and NewChanSink move bytes over channels and give up
// waiting when the context passed to Next or WriteContext is done. Both
// kinds run the same record protocol, the transport is the only place
// where a call may wait.
package stream
