// Package gen generates random well-formed events for tests and
// benchmarks.
//
// Generated events survive a write/read cycle unchanged: incoming
// particles end at their vertex and outgoing ones do not.
package gen

import (
	"math"
	"math/rand/v2"

	"github.com/signadot/go-hepmc2/event"
)

// Events returns n events drawn from a generator seeded with seed.
func Events(seed uint64, n int) []*event.Event {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	res := make([]*event.Event, n)
	for i := range res {
		res[i] = Event(rng)
	}
	return res
}

// Event returns a random event.
func Event(rng *rand.Rand) *event.Event {
	ev := &event.Event{
		Number:              rng.Int32(),
		MPI:                 rng.Int32(),
		Scale:               rng.Float64(),
		AlphaQCD:            0.1 + 0.02*rng.Float64(),
		AlphaQED:            1. / 137.,
		SignalProcessID:     rng.Int32(),
		SignalProcessVertex: rng.Int32(),
		CrossSection: event.CrossSection{
			Value: rng.Float64(),
			Error: rng.Float64(),
		},
		PdfInfo: event.PdfInfo{
			PartonID: [2]int32{rng.Int32(), rng.Int32()},
			X:        [2]float64{rng.Float64(), rng.Float64()},
			Scale:    rng.Float64(),
			XF:       [2]float64{rng.Float64(), rng.Float64()},
			PdfID:    [2]int32{rng.Int32(), rng.Int32()},
		},
		EnergyUnit: event.EnergyUnit(rng.IntN(2)),
		LengthUnit: event.LengthUnit(rng.IntN(2)),
	}
	for range rng.IntN(4) {
		ev.RandomStates = append(ev.RandomStates, rng.Int64())
	}
	for range rng.IntN(11) {
		ev.Weights = append(ev.Weights, rng.NormFloat64())
	}
	for range rng.IntN(11) {
		ev.WeightNames = append(ev.WeightNames, name(rng))
	}
	if rng.IntN(4) == 0 {
		ev.HeavyIon = heavyIon(rng)
	}
	nv := 1 + rng.IntN(5)
	for i := range nv {
		ev.Vertices = append(ev.Vertices, vertex(rng, -int32(i+1), int32(nv)))
	}
	return ev
}

func vertex(rng *rand.Rand, barcode, nv int32) event.Vertex {
	v := event.Vertex{
		Barcode:  barcode,
		Status:   rng.Int32(),
		Position: event.TXYZ(rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64()),
	}
	for range rng.IntN(3) {
		v.Weights = append(v.Weights, rng.Float64())
	}
	for range rng.IntN(3) {
		p := particle(rng)
		p.EndVertex = barcode
		v.ParticlesIn = append(v.ParticlesIn, p)
	}
	for range rng.IntN(6) {
		p := particle(rng)
		// final state or some other vertex
		if end := -1 - rng.Int32N(nv+1); end != barcode && end >= -nv {
			p.EndVertex = end
		}
		v.ParticlesOut = append(v.ParticlesOut, p)
	}
	return v
}

func particle(rng *rand.Rand) event.Particle {
	p := event.Particle{
		ID:       rng.Int32N(60) - 30,
		Momentum: event.TXYZ(rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64()),
		Mass:     175 * rng.Float64(),
		Status:   rng.Int32N(4) - 1,
		Theta:    math.Pi * rng.Float64(),
		Phi:      math.Pi * (2*rng.Float64() - 1),
	}
	if n := rng.IntN(3); n > 0 {
		p.Flows = make(map[int32]int32, n)
		for i := range n {
			p.Flows[int32(i+1)] = 500 + rng.Int32N(20)
		}
	}
	return p
}

func heavyIon(rng *rand.Rand) *event.HeavyIonInfo {
	return &event.HeavyIonInfo{
		NCollHard:                  rng.Int32N(100),
		NPartProj:                  rng.Int32N(208),
		NPartTarg:                  rng.Int32N(208),
		NColl:                      rng.Int32N(2000),
		NNwoundedCollisions:        rng.Int32N(100),
		NwoundedNCollisions:        rng.Int32N(100),
		NwoundedNwoundedCollisions: rng.Int32N(100),
		SpectatorNeutrons:          rng.Int32N(126),
		SpectatorProtons:           rng.Int32N(82),
		ImpactParameter:            20 * rng.Float64(),
		EventPlaneAngle:            math.Pi * rng.Float64(),
		Eccentricity:               rng.Float64(),
		SigmaInelNN:                70 * rng.Float64(),
	}
}

const alnum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func name(rng *rand.Rand) string {
	b := make([]byte, rng.IntN(6))
	for i := range b {
		b[i] = alnum[rng.IntN(len(alnum))]
	}
	return string(b)
}
