package parse

import (
	"github.com/signadot/go-hepmc2/event"
	"github.com/signadot/go-hepmc2/token"
)

// EventLine parses an E record into a new event. Only the scalar fields,
// random states and weights are set.
func EventLine(line []byte) (*event.Event, error) {
	s := token.NewScanner(line)
	return eventLine(s)
}

// VertexLine parses a V record.
func VertexLine(line []byte) (event.Vertex, error) {
	return vertexLine(token.NewScanner(line))
}

// ParticleLine parses a P record.
func ParticleLine(line []byte) (event.Particle, error) {
	return particleLine(token.NewScanner(line))
}

// UnitsLine parses a U record.
func UnitsLine(line []byte) (event.EnergyUnit, event.LengthUnit, error) {
	return unitsLine(token.NewScanner(line))
}

// PdfInfoLine parses an F record. The two trailing PDF set ids are
// optional and default to 0.
func PdfInfoLine(line []byte) (event.PdfInfo, error) {
	return pdfInfoLine(token.NewScanner(line))
}

// HeavyIonLine parses an H record.
func HeavyIonLine(line []byte) (*event.HeavyIonInfo, error) {
	return heavyIonLine(token.NewScanner(line))
}

// WeightNamesLine parses an N record.
func WeightNamesLine(line []byte) ([]string, error) {
	return weightNamesLine(token.NewScanner(line))
}

// CrossSectionLine parses a C record.
func CrossSectionLine(line []byte) (event.CrossSection, error) {
	return crossSectionLine(token.NewScanner(line))
}

func eventLine(s *token.Scanner) (ev *event.Event, err error) {
	defer wrap("event", &err)
	s.Skip(1)
	ev = &event.Event{}
	if ev.Number, err = s.Int32(); err != nil {
		return nil, err
	}
	if ev.MPI, err = s.Int32(); err != nil {
		return nil, err
	}
	if ev.Scale, err = s.Float(); err != nil {
		return nil, err
	}
	if ev.AlphaQCD, err = s.Float(); err != nil {
		return nil, err
	}
	if ev.AlphaQED, err = s.Float(); err != nil {
		return nil, err
	}
	if ev.SignalProcessID, err = s.Int32(); err != nil {
		return nil, err
	}
	if ev.SignalProcessVertex, err = s.Int32(); err != nil {
		return nil, err
	}
	nVertices, err := s.Count()
	if err != nil {
		return nil, err
	}
	// beam particle barcodes are not part of the model
	for range 2 {
		if _, err := s.Word(); err != nil {
			return nil, err
		}
	}
	nRandom, err := s.Count()
	if err != nil {
		return nil, err
	}
	if nRandom > 0 {
		ev.RandomStates = make([]int64, 0, min(nRandom, s.MaxFields()))
	}
	for range nRandom {
		r, err := s.Int64()
		if err != nil {
			return nil, err
		}
		ev.RandomStates = append(ev.RandomStates, r)
	}
	nWeights, err := s.Count()
	if err != nil {
		return nil, err
	}
	if nWeights > 0 {
		ev.Weights = make([]float64, 0, min(nWeights, s.MaxFields()))
		if ev.Weights, err = s.Floats(ev.Weights, nWeights); err != nil {
			return nil, err
		}
	}
	if nVertices > 0 {
		// the count is only a hint, the line length does not bound it.
		ev.Vertices = make([]event.Vertex, 0, min(nVertices, maxVertexHint))
	}
	return ev, nil
}

const maxVertexHint = 1 << 12

func vertexLine(s *token.Scanner) (v event.Vertex, err error) {
	defer wrap("vertex", &err)
	s.Skip(1)
	if v.Barcode, err = s.Int32(); err != nil {
		return v, err
	}
	if v.Status, err = s.Int32(); err != nil {
		return v, err
	}
	var xyzt [4]float64
	for i := range xyzt {
		if xyzt[i], err = s.Float(); err != nil {
			return v, err
		}
	}
	v.Position = event.TXYZ(xyzt[3], xyzt[0], xyzt[1], xyzt[2])
	// orphan count
	if _, err = s.Int32(); err != nil {
		return v, err
	}
	nOut, err := s.Count()
	if err != nil {
		return v, err
	}
	nWeights, err := s.Count()
	if err != nil {
		return v, err
	}
	if nWeights > 0 {
		v.Weights = make([]float64, 0, min(nWeights, s.MaxFields()))
		if v.Weights, err = s.Floats(v.Weights, nWeights); err != nil {
			return v, err
		}
	}
	if nOut > 0 {
		v.ParticlesOut = make([]event.Particle, 0, min(nOut, maxVertexHint))
	}
	return v, nil
}

func particleLine(s *token.Scanner) (p event.Particle, err error) {
	defer wrap("particle", &err)
	s.Skip(1)
	// barcode
	if _, err = s.Int32(); err != nil {
		return p, err
	}
	if p.ID, err = s.Int32(); err != nil {
		return p, err
	}
	var pxyze [4]float64
	for i := range pxyze {
		if pxyze[i], err = s.Float(); err != nil {
			return p, err
		}
	}
	p.Momentum = event.TXYZ(pxyze[3], pxyze[0], pxyze[1], pxyze[2])
	if p.Mass, err = s.Float(); err != nil {
		return p, err
	}
	if p.Status, err = s.Int32(); err != nil {
		return p, err
	}
	if p.Theta, err = s.Float(); err != nil {
		return p, err
	}
	if p.Phi, err = s.Float(); err != nil {
		return p, err
	}
	if p.EndVertex, err = s.Int32(); err != nil {
		return p, err
	}
	nFlows, err := s.Count()
	if err != nil {
		return p, err
	}
	if nFlows > 0 {
		p.Flows = make(map[int32]int32, min(nFlows, s.MaxFields()/2))
	}
	for range nFlows {
		idx, err := s.Int32()
		if err != nil {
			return p, err
		}
		val, err := s.Int32()
		if err != nil {
			return p, err
		}
		p.Flows[idx] = val
	}
	return p, nil
}

func unitsLine(s *token.Scanner) (eu event.EnergyUnit, lu event.LengthUnit, err error) {
	defer wrap("units", &err)
	s.Skip(1)
	e, err := s.Word()
	if err != nil {
		return eu, lu, err
	}
	l, err := s.Word()
	if err != nil {
		return eu, lu, err
	}
	if eu, err = event.ParseEnergyUnit(string(e)); err != nil {
		return eu, lu, err
	}
	if lu, err = event.ParseLengthUnit(string(l)); err != nil {
		return eu, lu, err
	}
	return eu, lu, nil
}

func pdfInfoLine(s *token.Scanner) (pdf event.PdfInfo, err error) {
	defer wrap("pdf info", &err)
	s.Skip(1)
	for i := range pdf.PartonID {
		if pdf.PartonID[i], err = s.Int32(); err != nil {
			return pdf, err
		}
	}
	for i := range pdf.X {
		if pdf.X[i], err = s.Float(); err != nil {
			return pdf, err
		}
	}
	if pdf.Scale, err = s.Float(); err != nil {
		return pdf, err
	}
	for i := range pdf.XF {
		if pdf.XF[i], err = s.Float(); err != nil {
			return pdf, err
		}
	}
	for i := range pdf.PdfID {
		if pdf.PdfID[i], _, err = s.OptInt32(); err != nil {
			return pdf, err
		}
	}
	return pdf, nil
}

func heavyIonLine(s *token.Scanner) (hi *event.HeavyIonInfo, err error) {
	defer wrap("heavy ion", &err)
	s.Skip(1)
	hi = &event.HeavyIonInfo{}
	for _, ip := range []*int32{
		&hi.NCollHard,
		&hi.NPartProj,
		&hi.NPartTarg,
		&hi.NColl,
		&hi.SpectatorNeutrons,
		&hi.SpectatorProtons,
		&hi.NNwoundedCollisions,
		&hi.NwoundedNCollisions,
		&hi.NwoundedNwoundedCollisions,
	} {
		if *ip, err = s.Int32(); err != nil {
			return nil, err
		}
	}
	for _, fp := range []*float64{
		&hi.ImpactParameter,
		&hi.EventPlaneAngle,
		&hi.Eccentricity,
		&hi.SigmaInelNN,
	} {
		if *fp, err = s.Float(); err != nil {
			return nil, err
		}
	}
	return hi, nil
}

func weightNamesLine(s *token.Scanner) (names []string, err error) {
	defer wrap("weight names", &err)
	s.Skip(1)
	n, err := s.Count()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	names = make([]string, 0, min(n, s.MaxFields()))
	for range n {
		name, err := s.Quoted()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func crossSectionLine(s *token.Scanner) (xs event.CrossSection, err error) {
	defer wrap("cross section", &err)
	s.Skip(1)
	if xs.Value, err = s.Float(); err != nil {
		return xs, err
	}
	if xs.Error, err = s.Float(); err != nil {
		return xs, err
	}
	return xs, nil
}

func wrap(rec string, errp *error) {
	if *errp != nil {
		*errp = recordErr(rec, *errp)
	}
}
