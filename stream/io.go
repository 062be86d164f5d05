package stream

import (
	"io"

	"github.com/signadot/go-hepmc2/event"
)

// EventReader provides events from a source (a listing, a slice, etc.).
// ReadEvent returns io.EOF after the last event.
type EventReader interface {
	ReadEvent() (*event.Event, error)
}

// EventSink receives events (a writer, a filter, etc.).
type EventSink interface {
	WriteEvent(*event.Event) error
}

// SliceEventReader provides the events of a slice.
type SliceEventReader struct {
	evs []*event.Event
}

// NewSliceEventReader creates an event reader returning evs in order.
func NewSliceEventReader(evs []*event.Event) *SliceEventReader {
	return &SliceEventReader{evs: evs}
}

// ReadEvent returns the next event of the slice.
func (r *SliceEventReader) ReadEvent() (*event.Event, error) {
	if len(r.evs) == 0 {
		return nil, io.EOF
	}
	ev := r.evs[0]
	r.evs = r.evs[1:]
	return ev, nil
}

// SliceEventSink collects events in a slice.
type SliceEventSink struct {
	Events []*event.Event
}

// WriteEvent appends ev.
func (s *SliceEventSink) WriteEvent(ev *event.Event) error {
	s.Events = append(s.Events, ev)
	return nil
}

// Copy moves events from src to dst until src returns io.EOF, and
// returns the number of events copied.
func Copy(dst EventSink, src EventReader) (int, error) {
	n := 0
	for {
		ev, err := src.ReadEvent()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := dst.WriteEvent(ev); err != nil {
			return n, err
		}
		n++
	}
}
