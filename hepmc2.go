package hepmc2

import (
	"context"
	"io"

	"github.com/signadot/go-hepmc2/event"
	"github.com/signadot/go-hepmc2/stream"
)

// ReadAll reads all events of a listing.
func ReadAll(r io.Reader, opts ...stream.StreamOption) ([]*event.Event, error) {
	var res []*event.Event
	for ev, err := range stream.NewReader(r, opts...).All(context.Background()) {
		if err != nil {
			return res, err
		}
		res = append(res, ev)
	}
	return res, nil
}

// WriteAll writes evs as a complete listing, header and footer included.
func WriteAll(w io.Writer, evs []*event.Event, opts ...stream.StreamOption) error {
	sw, err := stream.NewWriter(w, opts...)
	if err != nil {
		return err
	}
	defer sw.Close()
	if _, err := stream.Copy(sw, stream.NewSliceEventReader(evs)); err != nil {
		return err
	}
	return sw.Finish()
}
