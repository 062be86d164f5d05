package gen_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-hepmc2/event"
	"github.com/signadot/go-hepmc2/internal/gen"
	"github.com/signadot/go-hepmc2/stream"
)

func TestRoundTrip(t *testing.T) {
	for seed := range uint64(20) {
		evs := gen.Events(seed, 50)
		buf := bytes.NewBuffer(nil)
		w, err := stream.NewWriter(buf)
		if err != nil {
			t.Fatal(err)
		}
		for _, ev := range evs {
			if err := w.Write(ev); err != nil {
				t.Fatal(err)
			}
		}
		if err := w.Finish(); err != nil {
			t.Fatal(err)
		}
		first := bytes.Clone(buf.Bytes())
		var got []*event.Event
		for ev, err := range stream.NewReader(buf).All(context.Background()) {
			if err != nil {
				t.Fatalf("seed %d: %v", seed, err)
			}
			got = append(got, ev)
		}
		if diff := cmp.Diff(evs, got); diff != "" {
			t.Fatalf("seed %d: (-want +got):\n%s", seed, diff)
		}

		buf.Reset()
		w, _ = stream.NewWriter(buf)
		for _, ev := range got {
			w.Write(ev)
		}
		w.Finish()
		if !bytes.Equal(first, buf.Bytes()) {
			t.Fatalf("seed %d: serialisation not stable", seed)
		}
	}
}

func TestEventsDeterministic(t *testing.T) {
	if diff := cmp.Diff(gen.Events(7, 3), gen.Events(7, 3)); diff != "" {
		t.Error(diff)
	}
}
