package stream

import (
	"context"
	"io"
	"log/slog"

	"github.com/signadot/go-hepmc2/debug"
	"github.com/signadot/go-hepmc2/encode"
	"github.com/signadot/go-hepmc2/event"
)

// Writer writes events as a listing.
//
// The header is written by the constructor. Finish writes the footer and
// must be called exactly once; Close is a fallback for deferred cleanup.
// A Writer is not safe for concurrent use.
type Writer struct {
	sink Sink
	es   *encode.EncState
	log  *slog.Logger
	buf  []byte

	events   int
	finished bool
}

// NewWriter creates a Writer which blocks on w and writes the header.
func NewWriter(w io.Writer, opts ...StreamOption) (*Writer, error) {
	return NewSinkWriter(context.Background(), NewWriterSink(w), opts...)
}

// NewSinkWriter creates a Writer pushing to sink and writes the header.
func NewSinkWriter(ctx context.Context, sink Sink, opts ...StreamOption) (*Writer, error) {
	o := newStreamOpts(opts)
	w := &Writer{
		sink: sink,
		es:   encode.NewState(o.encOpts...),
		log:  o.logger,
	}
	if err := sink.Write(ctx, []byte(o.header)); err != nil {
		return nil, err
	}
	return w, nil
}

// Write writes ev.
func (w *Writer) Write(ev *event.Event) error {
	return w.WriteContext(context.Background(), ev)
}

// WriteEvent implements EventSink.
func (w *Writer) WriteEvent(ev *event.Event) error {
	return w.Write(ev)
}

// WriteContext writes ev, giving up when ctx is done if the Sink
// supports it.
func (w *Writer) WriteContext(ctx context.Context, ev *event.Event) error {
	if w.finished {
		return ErrFinished
	}
	w.buf = w.es.AppendEvent(w.buf[:0], ev)
	if debug.Write() {
		debug.Logf("hepmc2: write event %d:\n%s", ev.Number, w.buf)
	}
	if err := w.sink.Write(ctx, w.buf); err != nil {
		return err
	}
	w.events++
	return nil
}

// Events returns the number of events written.
func (w *Writer) Events() int {
	return w.events
}

// Finish writes the footer. Later calls to Finish or Write return
// ErrFinished, also when writing the footer failed.
func (w *Writer) Finish() error {
	return w.FinishContext(context.Background())
}

// FinishContext is Finish with a context for the Sink.
func (w *Writer) FinishContext(ctx context.Context) error {
	if w.finished {
		return ErrFinished
	}
	w.finished = true
	return w.sink.Write(ctx, []byte(Footer))
}

// Close writes the footer if Finish has not been called. A failure is
// logged and not returned, so Close always returns nil.
func (w *Writer) Close() error {
	if w.finished {
		return nil
	}
	if err := w.Finish(); err != nil {
		w.log.Error("hepmc2: writing footer", "error", err, "events", w.events)
	}
	return nil
}
