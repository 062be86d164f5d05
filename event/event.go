package event

import (
	"maps"
	"slices"
)

// FinalState is the EndVertex value of a particle which does not flow into
// any further vertex.
const FinalState int32 = 0

// Event is a single scattering event.
type Event struct {
	Number              int32   `json:"number" yaml:"number"`
	MPI                 int32   `json:"mpi" yaml:"mpi"`
	Scale               float64 `json:"scale" yaml:"scale"`
	AlphaQCD            float64 `json:"alphaQCD" yaml:"alphaQCD"`
	AlphaQED            float64 `json:"alphaQED" yaml:"alphaQED"`
	SignalProcessID     int32   `json:"signalProcessID" yaml:"signalProcessID"`
	SignalProcessVertex int32   `json:"signalProcessVertex" yaml:"signalProcessVertex"`

	RandomStates []int64   `json:"randomStates" yaml:"randomStates"`
	Weights      []float64 `json:"weights" yaml:"weights"`
	WeightNames  []string  `json:"weightNames" yaml:"weightNames"`

	// Vertices are kept in declaration order.
	Vertices []Vertex `json:"vertices" yaml:"vertices"`

	CrossSection CrossSection `json:"crossSection" yaml:"crossSection"`
	PdfInfo      PdfInfo      `json:"pdfInfo" yaml:"pdfInfo"`
	EnergyUnit   EnergyUnit   `json:"energyUnit" yaml:"energyUnit"`
	LengthUnit   LengthUnit   `json:"lengthUnit" yaml:"lengthUnit"`

	// HeavyIon is nil unless the event carried an H record.
	HeavyIon *HeavyIonInfo `json:"heavyIon,omitempty" yaml:"heavyIon,omitempty"`
}

// Vertex is an interaction point.
type Vertex struct {
	Barcode int32 `json:"barcode" yaml:"barcode"`
	Status  int32 `json:"status" yaml:"status"`
	// Position is (t, x, y, z).
	Position FourVector `json:"position" yaml:"position"`
	Weights  []float64  `json:"weights" yaml:"weights"`

	// ParticlesIn terminate at this vertex.
	ParticlesIn []Particle `json:"particlesIn" yaml:"particlesIn"`
	// ParticlesOut originate at this vertex.
	ParticlesOut []Particle `json:"particlesOut" yaml:"particlesOut"`
}

// Particle is a particle attached to a vertex.
type Particle struct {
	ID int32 `json:"id" yaml:"id"`
	// Momentum is (E, px, py, pz).
	Momentum FourVector      `json:"momentum" yaml:"momentum"`
	Mass     float64         `json:"mass" yaml:"mass"`
	Status   int32           `json:"status" yaml:"status"`
	Theta    float64         `json:"theta" yaml:"theta"`
	Phi      float64         `json:"phi" yaml:"phi"`
	Flows    map[int32]int32 `json:"flows,omitempty" yaml:"flows,omitempty"`

	// EndVertex is the barcode of the vertex this particle flows into, or
	// FinalState.
	EndVertex int32 `json:"endVertex" yaml:"endVertex"`
}

// CrossSection is a cross section and its uncertainty.
type CrossSection struct {
	Value float64 `json:"value" yaml:"value"`
	Error float64 `json:"error" yaml:"error"`
}

// PdfInfo describes the incoming partons of the hard process.
type PdfInfo struct {
	PartonID [2]int32   `json:"partonID" yaml:"partonID"`
	X        [2]float64 `json:"x" yaml:"x"`
	Scale    float64    `json:"scale" yaml:"scale"`
	XF       [2]float64 `json:"xf" yaml:"xf"`
	// PdfID is zero when the record omitted it.
	PdfID [2]int32 `json:"pdfID" yaml:"pdfID"`
}

// HeavyIonInfo describes the geometry of a nucleus-nucleus collision.
// Fields are in H record order.
type HeavyIonInfo struct {
	NCollHard                  int32 `json:"nCollHard" yaml:"nCollHard"`
	NPartProj                  int32 `json:"nPartProj" yaml:"nPartProj"`
	NPartTarg                  int32 `json:"nPartTarg" yaml:"nPartTarg"`
	NColl                      int32 `json:"nColl" yaml:"nColl"`
	SpectatorNeutrons          int32 `json:"spectatorNeutrons" yaml:"spectatorNeutrons"`
	SpectatorProtons           int32 `json:"spectatorProtons" yaml:"spectatorProtons"`
	NNwoundedCollisions        int32 `json:"nNwoundedCollisions" yaml:"nNwoundedCollisions"`
	NwoundedNCollisions        int32 `json:"nwoundedNCollisions" yaml:"nwoundedNCollisions"`
	NwoundedNwoundedCollisions int32 `json:"nwoundedNwoundedCollisions" yaml:"nwoundedNwoundedCollisions"`

	ImpactParameter float64 `json:"impactParameter" yaml:"impactParameter"`
	EventPlaneAngle float64 `json:"eventPlaneAngle" yaml:"eventPlaneAngle"`
	Eccentricity    float64 `json:"eccentricity" yaml:"eccentricity"`
	SigmaInelNN     float64 `json:"sigmaInelNN" yaml:"sigmaInelNN"`
}

// NumParticles returns the number of particle records the event holds.
func (e *Event) NumParticles() int {
	n := 0
	for i := range e.Vertices {
		v := &e.Vertices[i]
		n += len(v.ParticlesIn) + len(v.ParticlesOut)
	}
	return n
}

// Clone returns a deep copy of e.
func (e *Event) Clone() *Event {
	res := *e
	res.RandomStates = slices.Clone(e.RandomStates)
	res.Weights = slices.Clone(e.Weights)
	res.WeightNames = slices.Clone(e.WeightNames)
	if e.Vertices != nil {
		res.Vertices = make([]Vertex, len(e.Vertices))
		for i := range e.Vertices {
			res.Vertices[i] = e.Vertices[i].Clone()
		}
	}
	if e.HeavyIon != nil {
		hi := *e.HeavyIon
		res.HeavyIon = &hi
	}
	return &res
}

// Clone returns a deep copy of v.
func (v *Vertex) Clone() Vertex {
	res := *v
	res.Weights = slices.Clone(v.Weights)
	res.ParticlesIn = cloneParticles(v.ParticlesIn)
	res.ParticlesOut = cloneParticles(v.ParticlesOut)
	return res
}

func cloneParticles(ps []Particle) []Particle {
	if ps == nil {
		return nil
	}
	res := make([]Particle, len(ps))
	for i := range ps {
		res[i] = ps[i]
		res[i].Flows = maps.Clone(ps[i].Flows)
	}
	return res
}

// SortedFlows returns the flow indices of p in ascending order.
func (p *Particle) SortedFlows() []int32 {
	return slices.Sorted(maps.Keys(p.Flows))
}
