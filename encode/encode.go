package encode

import (
	"io"

	"github.com/signadot/go-hepmc2/event"
	"github.com/signadot/go-hepmc2/format"
)

// Record identifies an IO_GenEvent record by its prefix byte.
type Record byte

const (
	EventRecord        Record = 'E'
	VertexRecord       Record = 'V'
	ParticleRecord     Record = 'P'
	UnitsRecord        Record = 'U'
	PdfInfoRecord      Record = 'F'
	HeavyIonRecord     Record = 'H'
	WeightNamesRecord  Record = 'N'
	CrossSectionRecord Record = 'C'
)

// Records returns all record kinds in write order.
func Records() []Record {
	return []Record{
		EventRecord,
		WeightNamesRecord,
		UnitsRecord,
		CrossSectionRecord,
		PdfInfoRecord,
		HeavyIonRecord,
		VertexRecord,
		ParticleRecord,
	}
}

func (r Record) String() string {
	return string(rune(r))
}

// EncState holds encoder settings. The zero value writes plain records.
type EncState struct {
	Color func(Record, ColorAttr, string) string
}

// Encode writes the records of ev to w.
func Encode(ev *event.Event, w io.Writer, opts ...EncodeOption) error {
	es := NewState(opts...)
	_, err := w.Write(es.AppendEvent(nil, ev))
	return err
}

// AppendEvent appends the records of ev to dst without colour.
func AppendEvent(dst []byte, ev *event.Event) []byte {
	var es EncState
	return es.AppendEvent(dst, ev)
}

// AppendEvent appends all records of ev to dst.
func (es *EncState) AppendEvent(dst []byte, ev *event.Event) []byte {
	dst = es.AppendEventLine(dst, ev)
	if len(ev.WeightNames) > 0 {
		dst = es.AppendWeightNames(dst, ev.WeightNames)
	}
	dst = es.AppendUnits(dst, ev.EnergyUnit, ev.LengthUnit)
	dst = es.AppendCrossSection(dst, ev.CrossSection)
	dst = es.AppendPdfInfo(dst, &ev.PdfInfo)
	if ev.HeavyIon != nil {
		dst = es.AppendHeavyIon(dst, ev.HeavyIon)
	}
	for i := range ev.Vertices {
		v := &ev.Vertices[i]
		dst = es.AppendVertex(dst, v)
		for j := range v.ParticlesIn {
			dst = es.AppendParticle(dst, &v.ParticlesIn[j])
		}
		for j := range v.ParticlesOut {
			dst = es.AppendParticle(dst, &v.ParticlesOut[j])
		}
	}
	return dst
}

// AppendEventLine appends the E record. The beam particle barcodes are
// written as 0.
func (es *EncState) AppendEventLine(dst []byte, ev *event.Event) []byte {
	dst = es.prefix(dst, EventRecord)
	dst = appendInt(dst, int64(ev.Number))
	dst = appendInt(dst, int64(ev.MPI))
	dst = appendFloat(dst, ev.Scale)
	dst = appendFloat(dst, ev.AlphaQCD)
	dst = appendFloat(dst, ev.AlphaQED)
	dst = appendInt(dst, int64(ev.SignalProcessID))
	dst = appendInt(dst, int64(ev.SignalProcessVertex))
	dst = appendInt(dst, int64(len(ev.Vertices)))
	dst = append(dst, " 0 0"...)
	dst = appendInt(dst, int64(len(ev.RandomStates)))
	for _, r := range ev.RandomStates {
		dst = appendInt(dst, r)
	}
	dst = appendFloats(dst, ev.Weights)
	return append(dst, '\n')
}

// AppendWeightNames appends the N record.
func (es *EncState) AppendWeightNames(dst []byte, names []string) []byte {
	dst = es.prefix(dst, WeightNamesRecord)
	dst = appendInt(dst, int64(len(names)))
	for _, name := range names {
		dst = append(dst, ' ')
		q := `"` + name + `"`
		if es.Color != nil {
			q = es.Color(WeightNamesRecord, NameColor, q)
		}
		dst = append(dst, q...)
	}
	return append(dst, '\n')
}

// AppendUnits appends the U record.
func (es *EncState) AppendUnits(dst []byte, eu event.EnergyUnit, lu event.LengthUnit) []byte {
	dst = es.prefix(dst, UnitsRecord)
	dst = append(dst, ' ')
	dst = append(dst, eu.String()...)
	dst = append(dst, ' ')
	dst = append(dst, lu.String()...)
	return append(dst, '\n')
}

// AppendCrossSection appends the C record.
func (es *EncState) AppendCrossSection(dst []byte, xs event.CrossSection) []byte {
	dst = es.prefix(dst, CrossSectionRecord)
	dst = appendFloat(dst, xs.Value)
	dst = appendFloat(dst, xs.Error)
	return append(dst, '\n')
}

// AppendPdfInfo appends the F record, always with both PDF set ids.
func (es *EncState) AppendPdfInfo(dst []byte, pdf *event.PdfInfo) []byte {
	dst = es.prefix(dst, PdfInfoRecord)
	dst = appendInt(dst, int64(pdf.PartonID[0]))
	dst = appendInt(dst, int64(pdf.PartonID[1]))
	dst = appendFloat(dst, pdf.X[0])
	dst = appendFloat(dst, pdf.X[1])
	dst = appendFloat(dst, pdf.Scale)
	dst = appendFloat(dst, pdf.XF[0])
	dst = appendFloat(dst, pdf.XF[1])
	dst = appendInt(dst, int64(pdf.PdfID[0]))
	dst = appendInt(dst, int64(pdf.PdfID[1]))
	return append(dst, '\n')
}

// AppendHeavyIon appends the H record.
func (es *EncState) AppendHeavyIon(dst []byte, hi *event.HeavyIonInfo) []byte {
	dst = es.prefix(dst, HeavyIonRecord)
	for _, n := range [...]int32{
		hi.NCollHard,
		hi.NPartProj,
		hi.NPartTarg,
		hi.NColl,
		hi.SpectatorNeutrons,
		hi.SpectatorProtons,
		hi.NNwoundedCollisions,
		hi.NwoundedNCollisions,
		hi.NwoundedNwoundedCollisions,
	} {
		dst = appendInt(dst, int64(n))
	}
	for _, f := range [...]float64{
		hi.ImpactParameter,
		hi.EventPlaneAngle,
		hi.Eccentricity,
		hi.SigmaInelNN,
	} {
		dst = appendFloat(dst, f)
	}
	return append(dst, '\n')
}

// AppendVertex appends the V record of v, without its particles. The
// orphan count is written as 0.
func (es *EncState) AppendVertex(dst []byte, v *event.Vertex) []byte {
	dst = es.prefix(dst, VertexRecord)
	dst = appendInt(dst, int64(v.Barcode))
	dst = appendInt(dst, int64(v.Status))
	dst = appendFloat(dst, v.Position.X())
	dst = appendFloat(dst, v.Position.Y())
	dst = appendFloat(dst, v.Position.Z())
	dst = appendFloat(dst, v.Position.T())
	dst = append(dst, " 0"...)
	dst = appendInt(dst, int64(len(v.ParticlesOut)))
	dst = appendFloats(dst, v.Weights)
	return append(dst, '\n')
}

// AppendParticle appends the P record of p. The particle barcode is
// written as 0 and flows are ordered by index.
func (es *EncState) AppendParticle(dst []byte, p *event.Particle) []byte {
	dst = es.prefix(dst, ParticleRecord)
	dst = append(dst, " 0"...)
	dst = appendInt(dst, int64(p.ID))
	dst = appendFloat(dst, p.Momentum.X())
	dst = appendFloat(dst, p.Momentum.Y())
	dst = appendFloat(dst, p.Momentum.Z())
	dst = appendFloat(dst, p.Momentum.T())
	dst = appendFloat(dst, p.Mass)
	dst = appendInt(dst, int64(p.Status))
	dst = appendFloat(dst, p.Theta)
	dst = appendFloat(dst, p.Phi)
	dst = appendInt(dst, int64(p.EndVertex))
	dst = appendInt(dst, int64(len(p.Flows)))
	if len(p.Flows) > 0 {
		for _, k := range p.SortedFlows() {
			dst = appendInt(dst, int64(k))
			dst = appendInt(dst, int64(p.Flows[k]))
		}
	}
	return append(dst, '\n')
}

func (es *EncState) prefix(dst []byte, r Record) []byte {
	if es.Color == nil {
		return append(dst, byte(r))
	}
	return append(dst, es.Color(r, PrefixColor, r.String())...)
}

func appendInt(dst []byte, i int64) []byte {
	return format.AppendInt(append(dst, ' '), i)
}

func appendFloat(dst []byte, f float64) []byte {
	return format.AppendFloat(append(dst, ' '), f)
}

// appendFloats appends a count prefixed list.
func appendFloats(dst []byte, fs []float64) []byte {
	dst = appendInt(dst, int64(len(fs)))
	for _, f := range fs {
		dst = appendFloat(dst, f)
	}
	return dst
}
