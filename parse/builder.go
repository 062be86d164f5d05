package parse

import (
	"bytes"
	"fmt"

	"github.com/signadot/go-hepmc2/event"
	"github.com/signadot/go-hepmc2/token"
)

// Builder assembles one event from its record lines.
//
// The zero value is ready to use. A Builder may be reused: Begin discards
// any event under construction.
type Builder struct {
	s  token.Scanner
	ev *event.Event
}

// Begin starts a new event from an E record.
func (b *Builder) Begin(line []byte) error {
	b.ev = nil
	if len(line) == 0 || line[0] != 'E' {
		return ErrNotEvent
	}
	b.s.Reset(line)
	ev, err := eventLine(&b.s)
	if err != nil {
		return err
	}
	b.ev = ev
	return nil
}

// Add applies one body record to the event under construction. Blank
// lines and HepMC framing lines are ignored.
func (b *Builder) Add(line []byte) error {
	if b.ev == nil {
		return ErrNoEvent
	}
	if IsBlank(line) {
		return nil
	}
	ev := b.ev
	b.s.Reset(line)
	switch line[0] {
	case 'V':
		v, err := vertexLine(&b.s)
		if err != nil {
			return err
		}
		ev.Vertices = append(ev.Vertices, v)
	case 'P':
		p, err := particleLine(&b.s)
		if err != nil {
			return err
		}
		if len(ev.Vertices) == 0 {
			return ErrNoVertex
		}
		// the last vertex declared owns the particle
		v := &ev.Vertices[len(ev.Vertices)-1]
		if p.EndVertex == v.Barcode {
			v.ParticlesIn = append(v.ParticlesIn, p)
		} else {
			v.ParticlesOut = append(v.ParticlesOut, p)
		}
	case 'U':
		eu, lu, err := unitsLine(&b.s)
		if err != nil {
			return err
		}
		ev.EnergyUnit, ev.LengthUnit = eu, lu
	case 'F':
		pdf, err := pdfInfoLine(&b.s)
		if err != nil {
			return err
		}
		ev.PdfInfo = pdf
	case 'H':
		if IsFraming(line) {
			return nil
		}
		hi, err := heavyIonLine(&b.s)
		if err != nil {
			return err
		}
		ev.HeavyIon = hi
	case 'N':
		names, err := weightNamesLine(&b.s)
		if err != nil {
			return err
		}
		ev.WeightNames = names
	case 'C':
		xs, err := crossSectionLine(&b.s)
		if err != nil {
			return err
		}
		ev.CrossSection = xs
	case 'E':
		return ErrNestedEvent
	default:
		return fmt.Errorf("%w %q", ErrBadPrefix, line[0])
	}
	return nil
}

// Event returns the event under construction and resets b.
func (b *Builder) Event() *event.Event {
	ev := b.ev
	b.ev = nil
	if ev == nil {
		return nil
	}
	// drop storage reserved from count hints that no record filled
	if len(ev.Vertices) == 0 {
		ev.Vertices = nil
	}
	for i := range ev.Vertices {
		v := &ev.Vertices[i]
		if len(v.ParticlesOut) == 0 {
			v.ParticlesOut = nil
		}
	}
	return ev
}

// InProgress reports whether an event has been begun and not yet taken.
func (b *Builder) InProgress() bool {
	return b.ev != nil
}

var framingPrefix = []byte("HepMC")

// IsFraming reports whether line is a HepMC banner or listing marker.
func IsFraming(line []byte) bool {
	return bytes.HasPrefix(line, framingPrefix)
}

// IsBlank reports whether line holds only white space.
func IsBlank(line []byte) bool {
	return len(bytes.TrimSpace(line)) == 0
}
