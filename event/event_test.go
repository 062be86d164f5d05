package event

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnits(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want EnergyUnit
		err  bool
	}{
		{in: "GEV", want: GeV},
		{in: "MEV", want: MeV},
		{in: "GeV", err: true},
		{in: "", err: true},
	} {
		got, err := ParseEnergyUnit(tc.in)
		if tc.err {
			if !errors.Is(err, ErrBadUnit) {
				t.Errorf("%q: expected ErrBadUnit, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("%q: got %v want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseLengthUnit("KM"); !errors.Is(err, ErrBadUnit) {
		t.Errorf("expected ErrBadUnit, got %v", err)
	}
	var ev Event
	if ev.EnergyUnit.String() != "GEV" || ev.LengthUnit.String() != "MM" {
		t.Errorf("unexpected default units %s %s", ev.EnergyUnit, ev.LengthUnit)
	}
}

func TestUnitsJSON(t *testing.T) {
	in := Event{EnergyUnit: MeV, LengthUnit: CM}
	d, err := json.Marshal(&in)
	if err != nil {
		t.Fatal(err)
	}
	var out Event
	if err := json.Unmarshal(d, &out); err != nil {
		t.Fatal(err)
	}
	if out.EnergyUnit != MeV || out.LengthUnit != CM {
		t.Errorf("got %s %s", out.EnergyUnit, out.LengthUnit)
	}
}

func TestClone(t *testing.T) {
	ev := &Event{
		Number:  7,
		Weights: []float64{1, 2},
		Vertices: []Vertex{{
			Barcode:     -1,
			ParticlesIn: []Particle{{ID: 21, EndVertex: -1, Flows: map[int32]int32{1: 501}}},
		}},
		HeavyIon: &HeavyIonInfo{NColl: 3},
	}
	c := ev.Clone()
	if diff := cmp.Diff(ev, c); diff != "" {
		t.Fatalf("clone differs (-want +got):\n%s", diff)
	}
	c.Vertices[0].ParticlesIn[0].Flows[1] = 0
	c.Weights[0] = 9
	c.HeavyIon.NColl = 0
	if ev.Vertices[0].ParticlesIn[0].Flows[1] != 501 || ev.Weights[0] != 1 || ev.HeavyIon.NColl != 3 {
		t.Error("clone shares storage with original")
	}
}

func TestNumParticles(t *testing.T) {
	ev := &Event{Vertices: []Vertex{
		{ParticlesIn: make([]Particle, 2), ParticlesOut: make([]Particle, 1)},
		{ParticlesOut: make([]Particle, 3)},
	}}
	if n := ev.NumParticles(); n != 6 {
		t.Errorf("got %d particles", n)
	}
}

func TestSortedFlows(t *testing.T) {
	p := Particle{Flows: map[int32]int32{2: 502, 1: 501, 7: 0}}
	if diff := cmp.Diff([]int32{1, 2, 7}, p.SortedFlows()); diff != "" {
		t.Error(diff)
	}
}
