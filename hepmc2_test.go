package hepmc2

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-hepmc2/event"
	"github.com/signadot/go-hepmc2/internal/gen"
	"github.com/signadot/go-hepmc2/stream"
)

func TestReadWriteAll(t *testing.T) {
	evs := gen.Events(1, 10)
	buf := bytes.NewBuffer(nil)
	if err := WriteAll(buf, evs); err != nil {
		t.Fatal(err)
	}
	got, err := ReadAll(buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(evs, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWriteAllHeader(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := WriteAll(buf, nil, stream.WithHeader("")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != stream.Footer {
		t.Errorf("unexpected listing %q", buf.String())
	}
}

func TestReadAllError(t *testing.T) {
	in := "E 1 0 0 0 0 0 0 0 0 0 0 0\nE 2 0 0\n"
	evs, err := ReadAll(strings.NewReader(in))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(evs) != 1 {
		t.Errorf("expected the events before the error, got %d", len(evs))
	}
}

func matchEvent() *event.Event {
	return &event.Event{
		Number:       4,
		Weights:      []float64{1, 0.5},
		WeightNames:  []string{"nominal", "muR=2"},
		CrossSection: event.CrossSection{Value: 2.5},
		Vertices: []event.Vertex{
			{
				Barcode:     -1,
				ParticlesIn: []event.Particle{{ID: 2212, EndVertex: -1}},
				ParticlesOut: []event.Particle{
					{ID: 21, EndVertex: -2},
					{ID: 22},
				},
			},
			{
				Barcode:      -2,
				ParticlesIn:  []event.Particle{{ID: 21, EndVertex: -2}},
				ParticlesOut: []event.Particle{{ID: 11, Status: 1}, {ID: -11, Status: 1}},
			},
		},
	}
}

func TestWhere(t *testing.T) {
	ev := matchEvent()
	for _, tc := range []struct {
		src  string
		want bool
	}{
		{"event.Number == 4", true},
		{"event.Number > 4", false},
		{"nvertices() == 2 && nparticles() == 6", true},
		{"count(21) == 2", true},
		{"count(5) > 0", false},
		{"len(final()) == 3", true},
		{"all(final(), .EndVertex == 0)", true},
		{`weight("muR=2") == 0.5`, true},
		{`weight("missing") == 0`, true},
		{"event.CrossSection.Value > 2", true},
		{"len(event.Vertices[1].ParticlesOut) == 2", true},
	} {
		t.Run(tc.src, func(t *testing.T) {
			w, err := CompileWhere(tc.src)
			if err != nil {
				t.Fatal(err)
			}
			got, err := w.Match(ev)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %t", got)
			}
		})
	}
}

func TestWhereErrors(t *testing.T) {
	if _, err := CompileWhere("event.Number +"); err == nil {
		t.Error("expected syntax error")
	}
	if _, err := CompileWhere("event.Number + 1"); err == nil {
		t.Error("expected error for non boolean expression")
	}
	if _, err := CompileWhere("event.NoSuchField == 1"); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestPatch(t *testing.T) {
	p, err := DecodePatch([]byte(`[
		{"op": "replace", "path": "/crossSection/value", "value": 3.25},
		{"op": "replace", "path": "/energyUnit", "value": "MEV"},
		{"op": "remove", "path": "/vertices/1"},
		{"op": "add", "path": "/weightNames/-", "value": "extra"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	ev := matchEvent()
	got, err := p.Apply(ev)
	if err != nil {
		t.Fatal(err)
	}
	want := matchEvent()
	want.CrossSection.Value = 3.25
	want.EnergyUnit = event.MeV
	want.Vertices = want.Vertices[:1]
	want.WeightNames = append(want.WeightNames, "extra")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(matchEvent(), ev); diff != "" {
		t.Errorf("input modified:\n%s", diff)
	}
}

func TestPatchErrors(t *testing.T) {
	if _, err := DecodePatch([]byte(`{"op": "add"}`)); err == nil {
		t.Error("expected decode error")
	}
	p, err := DecodePatch([]byte(`[{"op": "replace", "path": "/energyUnit", "value": "EV"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Apply(matchEvent()); err == nil {
		t.Error("expected bad unit error")
	}
	p, err = DecodePatch([]byte(`[{"op": "remove", "path": "/vertices/9"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Apply(matchEvent()); err == nil {
		t.Error("expected apply error")
	}
}
