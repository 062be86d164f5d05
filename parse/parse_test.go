package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-hepmc2/event"
	"github.com/signadot/go-hepmc2/token"
)

const scenario = `E 0 -1 -1.0 -1.0 -1.0 0 0 1 1 2 0 0
U GEV MM
C 1.5 0.2
F 21 21 0.1 0.2 91.2 0.5 0.6
V -1 0 0 0 0 0 0 1 0
P 3 -1 0 0 10.0 10.0 0 21 0 0 -1 0
`

func TestParseScenario(t *testing.T) {
	ev, err := Parse([]byte(scenario))
	if err != nil {
		t.Fatal(err)
	}
	want := &event.Event{
		Number:   0,
		MPI:      -1,
		Scale:    -1,
		AlphaQCD: -1,
		AlphaQED: -1,
		Vertices: []event.Vertex{{
			Barcode: -1,
			ParticlesIn: []event.Particle{{
				ID:        -1,
				Momentum:  event.TXYZ(10, 0, 0, 10),
				Status:    21,
				EndVertex: -1,
			}},
		}},
		CrossSection: event.CrossSection{Value: 1.5, Error: 0.2},
		PdfInfo: event.PdfInfo{
			PartonID: [2]int32{21, 21},
			X:        [2]float64{0.1, 0.2},
			Scale:    91.2,
			XF:       [2]float64{0.5, 0.6},
		},
		EnergyUnit: event.GeV,
		LengthUnit: event.MM,
	}
	if diff := cmp.Diff(want, ev); diff != "" {
		t.Errorf("unexpected event (-want +got):\n%s", diff)
	}
}

func TestParticleClassification(t *testing.T) {
	in := `E 1 0 0 0 0 0 0 2 1 2 0 0
V -1 0 0 0 0 0 0 2 0
P 1 2212 0 0 7000 7000 0.938 4 0 0 -1 0
P 2 21 0 0 10 10 0 21 0 0 -2 1 1 501
P 3 22 1 1 1 2 0 1 0 0 0 0
V -2 0 0 0 0 0 0 1 0
P 4 21 0 0 10 10 0 21 0 0 -2 2 2 502 1 501
P 5 21 0 0 1 1 0 1 0 0 -1 0
`
	ev, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(ev.Vertices) != 2 {
		t.Fatalf("expected 2 vertices, got %d", len(ev.Vertices))
	}
	for _, v := range ev.Vertices {
		for _, p := range v.ParticlesIn {
			if p.EndVertex != v.Barcode {
				t.Errorf("vertex %d: incoming particle %d has end vertex %d", v.Barcode, p.ID, p.EndVertex)
			}
		}
		for _, p := range v.ParticlesOut {
			if p.EndVertex == v.Barcode {
				t.Errorf("vertex %d: outgoing particle %d has end vertex %d", v.Barcode, p.ID, p.EndVertex)
			}
		}
	}
	ids := func(ps []event.Particle) []int32 {
		var res []int32
		for _, p := range ps {
			res = append(res, p.ID)
		}
		return res
	}
	if diff := cmp.Diff([]int32{2212}, ids(ev.Vertices[0].ParticlesIn)); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]int32{21, 22}, ids(ev.Vertices[0].ParticlesOut)); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]int32{21}, ids(ev.Vertices[1].ParticlesIn)); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]int32{21}, ids(ev.Vertices[1].ParticlesOut)); diff != "" {
		t.Error(diff)
	}
	flows := ev.Vertices[1].ParticlesIn[0].Flows
	if diff := cmp.Diff(map[int32]int32{1: 501, 2: 502}, flows); diff != "" {
		t.Error(diff)
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want []error
	}{
		{
			name: "particle before vertex",
			in:   "E 1 0 0 0 0 0 0 0 1 2 0 0\nP 1 21 0 0 1 1 0 1 0 0 0 0\n",
			want: []error{ErrNoVertex, ErrParse},
		},
		{
			name: "bad prefix",
			in:   "E 1 0 0 0 0 0 0 0 1 2 0 0\nX nonsense\n",
			want: []error{ErrBadPrefix},
		},
		{
			name: "bad unit",
			in:   "E 1 0 0 0 0 0 0 0 1 2 0 0\nU GEV KM\n",
			want: []error{event.ErrBadUnit, ErrParse},
		},
		{
			name: "short vertex",
			in:   "E 1 0 0 0 0 0 0 0 1 2 0 0\nV -1 0 0 0\n",
			want: []error{token.ErrSyntax},
		},
		{
			name: "int overflow",
			in:   "E 99999999999 0 0 0 0 0 0 0 1 2 0 0\n",
			want: []error{token.ErrInt},
		},
		{
			name: "float garbage",
			in:   "E 1 0 0 0 0 0 0 0 1 2 0 0\nC 1.0 x\n",
			want: []error{token.ErrSyntax},
		},
		{
			name: "not an event",
			in:   "V -1 0 0 0 0 0 0 0 0\n",
			want: []error{ErrNotEvent},
		},
		{
			name: "two events",
			in:   "E 1 0 0 0 0 0 0 0 1 2 0 0\nE 2 0 0 0 0 0 0 0 1 2 0 0\n",
			want: []error{ErrMultipleEvts},
		},
		{
			name: "empty",
			in:   "HepMC::Version 2.06.09\n\n",
			want: []error{ErrNoEvent},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.in))
			if err == nil {
				t.Fatal("expected error")
			}
			for _, w := range tc.want {
				if !errors.Is(err, w) {
					t.Errorf("expected %v in %v", w, err)
				}
			}
		})
	}
}

func TestPdfInfoOptionalIDs(t *testing.T) {
	pdf, err := PdfInfoLine([]byte("F 1 -2 0.25 0.5 100 1.5 2.5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if pdf.PdfID != [2]int32{0, 0} {
		t.Errorf("expected zero pdf ids, got %v", pdf.PdfID)
	}
	pdf, err = PdfInfoLine([]byte("F 1 -2 0.25 0.5 100 1.5 2.5 10042 10043"))
	if err != nil {
		t.Fatal(err)
	}
	want := event.PdfInfo{
		PartonID: [2]int32{1, -2},
		X:        [2]float64{0.25, 0.5},
		Scale:    100,
		XF:       [2]float64{1.5, 2.5},
		PdfID:    [2]int32{10042, 10043},
	}
	if diff := cmp.Diff(want, pdf); diff != "" {
		t.Error(diff)
	}
}

func TestHeavyIonLine(t *testing.T) {
	// spectator counts precede the wounded collision counts
	hi, err := HeavyIonLine([]byte("H 1 2 3 4 55 66 7 8 9 1.5 0.25 0.125 70"))
	if err != nil {
		t.Fatal(err)
	}
	want := &event.HeavyIonInfo{
		NCollHard: 1, NPartProj: 2, NPartTarg: 3, NColl: 4,
		SpectatorNeutrons: 55, SpectatorProtons: 66,
		NNwoundedCollisions: 7, NwoundedNCollisions: 8, NwoundedNwoundedCollisions: 9,
		ImpactParameter: 1.5, EventPlaneAngle: 0.25, Eccentricity: 0.125, SigmaInelNN: 70,
	}
	if diff := cmp.Diff(want, hi); diff != "" {
		t.Error(diff)
	}
	if _, err := HeavyIonLine([]byte("H 1 2 3 4 5 6 7 8 9 1.5 0.25 0.125")); !errors.Is(err, token.ErrSyntax) {
		t.Errorf("expected syntax error, got %v", err)
	}
}

func TestWeightNamesLine(t *testing.T) {
	names, err := WeightNamesLine([]byte(`N 3 "0" "Weight" "a b"` + "\n"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"0", "Weight", "a b"}, names); diff != "" {
		t.Error(diff)
	}
	if _, err := WeightNamesLine([]byte(`N 2 "0"`)); !errors.Is(err, token.ErrSyntax) {
		t.Errorf("expected syntax error, got %v", err)
	}
}

func TestEventLine(t *testing.T) {
	ev, err := EventLine([]byte("E 12 3 91.1876 0.118 0.0078125 20 -5 40 -1 -2 2 4357 99999999999 2 1.5 -2.5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if ev.Number != 12 || ev.MPI != 3 || ev.SignalProcessID != 20 || ev.SignalProcessVertex != -5 {
		t.Errorf("unexpected scalars %+v", ev)
	}
	if diff := cmp.Diff([]int64{4357, 99999999999}, ev.RandomStates); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]float64{1.5, -2.5}, ev.Weights); diff != "" {
		t.Error(diff)
	}
	if cap(ev.Vertices) != 40 {
		t.Errorf("expected vertex capacity 40, got %d", cap(ev.Vertices))
	}
}

func TestBuilderSkips(t *testing.T) {
	b := &Builder{}
	if err := b.Add([]byte("V -1 0 0 0 0 0 0 0 0")); !errors.Is(err, ErrNoEvent) {
		t.Fatalf("expected ErrNoEvent, got %v", err)
	}
	if err := b.Begin([]byte("E 1 0 0 0 0 0 0 0 1 2 0 0")); err != nil {
		t.Fatal(err)
	}
	for _, ln := range []string{"\n", "   \n", "HepMC::IO_GenEvent-END_EVENT_LISTING\n"} {
		if err := b.Add([]byte(ln)); err != nil {
			t.Errorf("%q: %v", ln, err)
		}
	}
	if err := b.Add([]byte("E 2 0 0 0 0 0 0 0 1 2 0 0")); !errors.Is(err, ErrNestedEvent) {
		t.Errorf("expected ErrNestedEvent, got %v", err)
	}
	ev := b.Event()
	if ev == nil || ev.Number != 1 {
		t.Fatalf("unexpected event %+v", ev)
	}
	if b.InProgress() || b.Event() != nil {
		t.Error("builder not reset")
	}
}

func TestParseFramed(t *testing.T) {
	in := strings.Join([]string{
		"HepMC::Version 2.06.09",
		"HepMC::IO_GenEvent-START_EVENT_LISTING",
		"E 5 0 0 0 0 0 0 1 1 2 0 1 2.5",
		`N 1 "w"`,
		"V -1 0 1 2 3 4 0 0 1 0.5",
		"",
		"HepMC::IO_GenEvent-END_EVENT_LISTING",
		"",
	}, "\n")
	ev, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if ev.Number != 5 || len(ev.Vertices) != 1 {
		t.Fatalf("unexpected event %+v", ev)
	}
	v := ev.Vertices[0]
	if v.Position != event.TXYZ(4, 1, 2, 3) {
		t.Errorf("unexpected position %v", v.Position)
	}
	if diff := cmp.Diff([]float64{0.5}, v.Weights); diff != "" {
		t.Error(diff)
	}
	if v.ParticlesOut != nil {
		t.Errorf("expected nil outgoing particles, got %#v", v.ParticlesOut)
	}
}
