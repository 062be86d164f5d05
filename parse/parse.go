package parse

import (
	"bytes"
	"fmt"

	"github.com/signadot/go-hepmc2/event"
)

// Parse parses exactly one event from d. Framing lines before the event
// are skipped.
func Parse(d []byte) (*event.Event, error) {
	b := &Builder{}
	lineNr := 0
	for len(d) > 0 {
		var line []byte
		if i := bytes.IndexByte(d, '\n'); i >= 0 {
			line, d = d[:i+1], d[i+1:]
		} else {
			line, d = d, nil
		}
		lineNr++
		if !b.InProgress() {
			if IsBlank(line) || IsFraming(line) {
				continue
			}
			if err := b.Begin(line); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNr, err)
			}
			continue
		}
		if line[0] == 'E' {
			return nil, fmt.Errorf("line %d: %w", lineNr, ErrMultipleEvts)
		}
		if IsFraming(line) {
			continue
		}
		if err := b.Add(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNr, err)
		}
	}
	if !b.InProgress() {
		return nil, ErrNoEvent
	}
	return b.Event(), nil
}
