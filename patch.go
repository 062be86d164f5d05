package hepmc2

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/go-hepmc2/event"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patcher applies an RFC 6902 JSON patch to events. Paths address the
// JSON form of event.Event, for example /crossSection/value or
// /vertices/0/particlesOut/1/status.
type Patcher struct {
	ops jsonpatch.Patch
}

// DecodePatch decodes a JSON patch document.
func DecodePatch(d []byte) (*Patcher, error) {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, err
	}
	return &Patcher{ops: ops}, nil
}

// Apply returns a patched copy of ev.
func (p *Patcher) Apply(ev *event.Event) (*event.Event, error) {
	d, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", ev.Number, err)
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", ev.Number, err)
	}
	res := &event.Event{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("event %d: patched event: %w", ev.Number, err)
	}
	return res, nil
}
